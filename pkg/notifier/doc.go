// Package notifier implements the notification generation and delivery
// pipeline for the campus platform: templated event rendering,
// per-recipient preference gating with quiet hours, role-aware deep
// links, priority-driven expiry, and batched multi-recipient fan-out.
//
// The pipeline persists notification records for later retrieval; it
// does not push them anywhere in real time. Delivery is at-least-once:
// duplicate calls from a careless caller produce duplicate records, and
// idempotency of business events stays with the caller.
//
// # Architecture
//
//   - Kind/Category/Priority: closed classification tables
//   - Payload + Render: the template catalog, one payload type per Kind
//   - Preferences: per-category toggles and the quiet-hours window
//   - ResolveLink: role-prefixed deep link routing
//   - Storage: persistence collaborator (memory and MongoDB included)
//   - Directory: identity collaborator (roles and preferences)
//   - Service: orchestrates the pipeline and the query/lifecycle API
//
// # Basic Usage
//
//	storage := notifier.NewMemoryStorage()
//	svc := notifier.NewService(storage, directory)
//
//	id, err := svc.Create(ctx, "student-1", notifier.KindAttendanceAbsent,
//	    notifier.Fields{RelatedID: "lesson-42"},
//	    notifier.AttendanceAbsent{SubjectName: "Math", Date: "2024-05-01", PeriodNumber: 3},
//	)
//
// An empty id with a nil error means the recipient's preferences
// suppressed the notification.
//
// # Fan-out
//
//	err := svc.CreateBulk(ctx, classRosterIDs, notifier.KindAssignmentCreated,
//	    notifier.Fields{RelatedID: assignmentID},
//	    notifier.AssignmentCreated{ClassName: "7B", AssignmentTitle: "Essay", DueDate: "Friday"},
//	)
//
// Recipient ids are de-duplicated and writes are chunked to the
// storage's atomic-batch ceiling. Bulk delivery does not consult
// recipient preferences.
//
// # Error Policy
//
// Reads of the identity collaborator fail open: a broken preference or
// profile record is logged and replaced with permissive defaults, so a
// safety-relevant notification (an absence alert, say) is never
// silently dropped. Storage writes fail closed and propagate.
package notifier
