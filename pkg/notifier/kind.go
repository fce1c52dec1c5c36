package notifier

// Kind identifies the business event a notification describes.
// The set is closed: every Kind has exactly one template renderer,
// one category and one default priority.
type Kind string

const (
	// Assignment family.
	KindAssignmentCreated   Kind = "assignment-created"
	KindAssignmentUpdated   Kind = "assignment-updated"
	KindAssignmentDueSoon   Kind = "assignment-due-soon"
	KindAssignmentSubmitted Kind = "assignment-submitted"
	KindAssignmentGraded    Kind = "assignment-graded"
	KindAssignmentReturned  Kind = "assignment-returned"

	// Quiz family.
	KindQuizCreated         Kind = "quiz-created"
	KindQuizUpdated         Kind = "quiz-updated"
	KindQuizDueSoon         Kind = "quiz-due-soon"
	KindQuizGraded          Kind = "quiz-graded"
	KindQuizResultPublished Kind = "quiz-result-published"

	// Grade family.
	KindGradePosted      Kind = "grade-posted"
	KindGradeUpdated     Kind = "grade-updated"
	KindGradeComment     Kind = "grade-comment"
	KindGradeReportReady Kind = "grade-report-ready"

	// Feedback family.
	KindStudentReview   Kind = "student-review"
	KindTeacherFeedback Kind = "teacher-feedback"
	KindParentComment   Kind = "parent-comment"

	// Attendance family.
	KindAttendanceAbsent  Kind = "attendance-absent"
	KindAttendanceLate    Kind = "attendance-late"
	KindAttendanceExcused Kind = "attendance-excused"
	KindAttendanceMarked  Kind = "attendance-marked"
	KindAttendanceUpdated Kind = "attendance-updated"

	// System family.
	KindSystemAnnouncement Kind = "system-announcement"
	KindSystemMaintenance  Kind = "system-maintenance"
	KindSystemUpdate       Kind = "system-update"
	KindPasswordChanged    Kind = "password-changed"
	KindAccountUpdated     Kind = "account-updated"
	KindTimetableChanged   Kind = "timetable-changed"
	KindClassEnrolled      Kind = "class-enrolled"

	// Message family.
	KindMessageReceived  Kind = "message-received"
	KindGroupMessage     Kind = "group-message"
	KindBroadcastMessage Kind = "broadcast-message"
	KindMessageReply     Kind = "message-reply"
	KindMessageMention   Kind = "message-mention"
)

// Category is the coarse grouping of kinds used for user-facing
// preference toggles and link routing.
type Category string

const (
	CategoryAssignments Category = "assignments"
	CategoryQuizzes     Category = "quizzes"
	CategoryGrades      Category = "grades"
	CategoryAttendance  Category = "attendance"
	CategoryFeedback    Category = "feedback"
	CategorySystem      Category = "system"
	CategoryMessages    Category = "messages"
)

// Segment returns the URL path segment for the category.
func (c Category) Segment() string {
	return string(c)
}

// Priority is the urgency tier of a notification. It controls how long
// a notification lives and whether it may break through quiet hours.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Less reports whether p is strictly less urgent than other.
func (p Priority) Less(other Priority) bool {
	return priorityRank[p] < priorityRank[other]
}

// Valid reports whether p is one of the defined priority values.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// kindCategories maps every Kind to its Category. Kinds absent from the
// table classify as CategorySystem.
var kindCategories = map[Kind]Category{
	KindAssignmentCreated:   CategoryAssignments,
	KindAssignmentUpdated:   CategoryAssignments,
	KindAssignmentDueSoon:   CategoryAssignments,
	KindAssignmentSubmitted: CategoryAssignments,
	KindAssignmentGraded:    CategoryAssignments,
	KindAssignmentReturned:  CategoryAssignments,

	KindQuizCreated:         CategoryQuizzes,
	KindQuizUpdated:         CategoryQuizzes,
	KindQuizDueSoon:         CategoryQuizzes,
	KindQuizGraded:          CategoryQuizzes,
	KindQuizResultPublished: CategoryQuizzes,

	KindGradePosted:      CategoryGrades,
	KindGradeUpdated:     CategoryGrades,
	KindGradeComment:     CategoryGrades,
	KindGradeReportReady: CategoryGrades,

	KindStudentReview:   CategoryFeedback,
	KindTeacherFeedback: CategoryFeedback,
	KindParentComment:   CategoryFeedback,

	KindAttendanceAbsent:  CategoryAttendance,
	KindAttendanceLate:    CategoryAttendance,
	KindAttendanceExcused: CategoryAttendance,
	KindAttendanceMarked:  CategoryAttendance,
	KindAttendanceUpdated: CategoryAttendance,

	KindSystemAnnouncement: CategorySystem,
	KindSystemMaintenance:  CategorySystem,
	KindSystemUpdate:       CategorySystem,
	KindPasswordChanged:    CategorySystem,
	KindAccountUpdated:     CategorySystem,
	KindTimetableChanged:   CategorySystem,
	KindClassEnrolled:      CategorySystem,

	KindMessageReceived:  CategoryMessages,
	KindGroupMessage:     CategoryMessages,
	KindBroadcastMessage: CategoryMessages,
	KindMessageReply:     CategoryMessages,
	KindMessageMention:   CategoryMessages,
}

// kindPriorities holds the kinds whose default priority deviates from
// PriorityMedium.
var kindPriorities = map[Kind]Priority{
	KindAssignmentDueSoon: PriorityHigh,
	KindQuizDueSoon:       PriorityHigh,
	KindAttendanceAbsent:  PriorityHigh,
	KindStudentReview:     PriorityHigh,

	KindGradeComment:      PriorityLow,
	KindAttendanceExcused: PriorityLow,
	KindAccountUpdated:    PriorityLow,
}

// Category returns the category the kind belongs to. Total: kinds
// outside the closed set fall back to CategorySystem.
func (k Kind) Category() Category {
	if c, ok := kindCategories[k]; ok {
		return c
	}
	return CategorySystem
}

// DefaultPriority returns the priority assigned to the kind when the
// caller does not pin one explicitly. Total: defaults to PriorityMedium.
func (k Kind) DefaultPriority() Priority {
	if p, ok := kindPriorities[k]; ok {
		return p
	}
	return PriorityMedium
}

// Known reports whether k belongs to the closed kind set.
func (k Kind) Known() bool {
	_, ok := kindCategories[k]
	return ok
}

// Kinds returns all defined notification kinds.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindCategories))
	for k := range kindCategories {
		out = append(out, k)
	}
	return out
}
