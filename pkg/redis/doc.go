// Package redis manages the connection to the cache server used to
// memoize directory lookups during notification fan-out.
//
// Configuration is environment-driven (see Config). Connect verifies
// the connection with a ping and retries transient failures.
package redis
