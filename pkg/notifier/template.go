package notifier

import "fmt"

// Template is the rendered seed for a notification. It is produced per
// invocation from a payload and never persisted on its own.
type Template struct {
	Title    string
	Message  string
	Category Category
	Priority Priority
	Icon     string
	Color    string
	Actions  []Action
}

// Payload carries the kind-specific parameters the template catalog
// interpolates into a title and message. The interface is sealed: each
// Kind has exactly one payload type, so which parameters an event
// requires is checked at compile time.
type Payload interface {
	Kind() Kind
	template() Template
}

// Render produces the template for a payload. Rendering is pure: no
// I/O, total for any payload value. Category, priority, icon and color
// are filled from the kind's classification tables.
func Render(p Payload) Template {
	t := p.template()
	kind := p.Kind()
	t.Category = kind.Category()
	t.Priority = kind.DefaultPriority()
	if t.Icon == "" {
		t.Icon = categoryIcons[t.Category]
	}
	if t.Color == "" {
		t.Color = priorityColors[t.Priority]
	}
	return t
}

var categoryIcons = map[Category]string{
	CategoryAssignments: "assignment",
	CategoryQuizzes:     "quiz",
	CategoryGrades:      "grade",
	CategoryAttendance:  "event_busy",
	CategoryFeedback:    "rate_review",
	CategorySystem:      "settings",
	CategoryMessages:    "chat",
}

var priorityColors = map[Priority]string{
	PriorityLow:    "#9E9E9E",
	PriorityMedium: "#2196F3",
	PriorityHigh:   "#FF9800",
	PriorityUrgent: "#F44336",
}

// Assignment family.

type AssignmentCreated struct {
	ClassName       string
	AssignmentTitle string
	DueDate         string
}

func (AssignmentCreated) Kind() Kind { return KindAssignmentCreated }

func (p AssignmentCreated) template() Template {
	return Template{
		Title:   "New Assignment",
		Message: fmt.Sprintf("A new assignment %q was posted in %s, due %s.", p.AssignmentTitle, p.ClassName, p.DueDate),
	}
}

type AssignmentUpdated struct {
	ClassName       string
	AssignmentTitle string
}

func (AssignmentUpdated) Kind() Kind { return KindAssignmentUpdated }

func (p AssignmentUpdated) template() Template {
	return Template{
		Title:   "Assignment Updated",
		Message: fmt.Sprintf("The assignment %q in %s was updated.", p.AssignmentTitle, p.ClassName),
	}
}

type AssignmentDueSoon struct {
	AssignmentTitle string
	DueDate         string
}

func (AssignmentDueSoon) Kind() Kind { return KindAssignmentDueSoon }

func (p AssignmentDueSoon) template() Template {
	return Template{
		Title:   "Assignment Due Soon",
		Message: fmt.Sprintf("The assignment %q is due %s.", p.AssignmentTitle, p.DueDate),
	}
}

type AssignmentSubmitted struct {
	StudentName     string
	AssignmentTitle string
}

func (AssignmentSubmitted) Kind() Kind { return KindAssignmentSubmitted }

func (p AssignmentSubmitted) template() Template {
	return Template{
		Title:   "Assignment Submitted",
		Message: fmt.Sprintf("%s submitted %q.", p.StudentName, p.AssignmentTitle),
	}
}

type AssignmentGraded struct {
	AssignmentTitle string
	Grade           string
}

func (AssignmentGraded) Kind() Kind { return KindAssignmentGraded }

func (p AssignmentGraded) template() Template {
	return Template{
		Title:   "Assignment Graded",
		Message: fmt.Sprintf("Your assignment %q was graded: %s.", p.AssignmentTitle, p.Grade),
	}
}

type AssignmentReturned struct {
	AssignmentTitle string
	TeacherName     string
}

func (AssignmentReturned) Kind() Kind { return KindAssignmentReturned }

func (p AssignmentReturned) template() Template {
	return Template{
		Title:   "Assignment Returned",
		Message: fmt.Sprintf("%s returned your assignment %q for revision.", p.TeacherName, p.AssignmentTitle),
	}
}

// Quiz family.

type QuizCreated struct {
	ClassName string
	QuizTitle string
	DueDate   string
}

func (QuizCreated) Kind() Kind { return KindQuizCreated }

func (p QuizCreated) template() Template {
	return Template{
		Title:   "New Quiz",
		Message: fmt.Sprintf("A new quiz %q was posted in %s, due %s.", p.QuizTitle, p.ClassName, p.DueDate),
	}
}

type QuizUpdated struct {
	ClassName string
	QuizTitle string
}

func (QuizUpdated) Kind() Kind { return KindQuizUpdated }

func (p QuizUpdated) template() Template {
	return Template{
		Title:   "Quiz Updated",
		Message: fmt.Sprintf("The quiz %q in %s was updated.", p.QuizTitle, p.ClassName),
	}
}

type QuizDueSoon struct {
	QuizTitle string
	DueDate   string
}

func (QuizDueSoon) Kind() Kind { return KindQuizDueSoon }

func (p QuizDueSoon) template() Template {
	return Template{
		Title:   "Quiz Due Soon",
		Message: fmt.Sprintf("The quiz %q is due %s.", p.QuizTitle, p.DueDate),
	}
}

type QuizGraded struct {
	QuizTitle string
	Grade     string
}

func (QuizGraded) Kind() Kind { return KindQuizGraded }

func (p QuizGraded) template() Template {
	return Template{
		Title:   "Quiz Graded",
		Message: fmt.Sprintf("Your quiz %q was graded: %s.", p.QuizTitle, p.Grade),
	}
}

type QuizResultPublished struct {
	QuizTitle string
	ClassName string
}

func (QuizResultPublished) Kind() Kind { return KindQuizResultPublished }

func (p QuizResultPublished) template() Template {
	return Template{
		Title:   "Quiz Results Published",
		Message: fmt.Sprintf("Results for the quiz %q in %s are available.", p.QuizTitle, p.ClassName),
	}
}

// Grade family.

type GradePosted struct {
	SubjectName string
	Grade       string
}

func (GradePosted) Kind() Kind { return KindGradePosted }

func (p GradePosted) template() Template {
	return Template{
		Title:   "Grade Posted",
		Message: fmt.Sprintf("A new grade was posted for %s: %s.", p.SubjectName, p.Grade),
	}
}

type GradeUpdated struct {
	SubjectName string
	Grade       string
}

func (GradeUpdated) Kind() Kind { return KindGradeUpdated }

func (p GradeUpdated) template() Template {
	return Template{
		Title:   "Grade Updated",
		Message: fmt.Sprintf("Your grade for %s was updated to %s.", p.SubjectName, p.Grade),
	}
}

type GradeComment struct {
	SubjectName string
	TeacherName string
}

func (GradeComment) Kind() Kind { return KindGradeComment }

func (p GradeComment) template() Template {
	return Template{
		Title:   "New Grade Comment",
		Message: fmt.Sprintf("%s commented on your %s grade.", p.TeacherName, p.SubjectName),
	}
}

type GradeReportReady struct {
	TermName string
}

func (GradeReportReady) Kind() Kind { return KindGradeReportReady }

func (p GradeReportReady) template() Template {
	return Template{
		Title:   "Report Card Ready",
		Message: fmt.Sprintf("The grade report for %s is ready to view.", p.TermName),
	}
}

// Feedback family.

type StudentReview struct {
	StudentName string
	ClassName   string
}

func (StudentReview) Kind() Kind { return KindStudentReview }

func (p StudentReview) template() Template {
	return Template{
		Title:   "Student Review",
		Message: fmt.Sprintf("A review for %s in %s needs your attention.", p.StudentName, p.ClassName),
	}
}

type TeacherFeedback struct {
	TeacherName string
	SubjectName string
}

func (TeacherFeedback) Kind() Kind { return KindTeacherFeedback }

func (p TeacherFeedback) template() Template {
	return Template{
		Title:   "Teacher Feedback",
		Message: fmt.Sprintf("%s left feedback on your %s work.", p.TeacherName, p.SubjectName),
	}
}

type ParentComment struct {
	ParentName  string
	StudentName string
}

func (ParentComment) Kind() Kind { return KindParentComment }

func (p ParentComment) template() Template {
	return Template{
		Title:   "Parent Comment",
		Message: fmt.Sprintf("%s left a comment regarding %s.", p.ParentName, p.StudentName),
	}
}

// Attendance family.

type AttendanceAbsent struct {
	SubjectName  string
	Date         string
	PeriodNumber int
}

func (AttendanceAbsent) Kind() Kind { return KindAttendanceAbsent }

func (p AttendanceAbsent) template() Template {
	return Template{
		Title:   "Absence Recorded",
		Message: fmt.Sprintf("Marked absent in %s on %s (period %d).", p.SubjectName, p.Date, p.PeriodNumber),
	}
}

type AttendanceLate struct {
	SubjectName  string
	Date         string
	PeriodNumber int
}

func (AttendanceLate) Kind() Kind { return KindAttendanceLate }

func (p AttendanceLate) template() Template {
	return Template{
		Title:   "Late Arrival Recorded",
		Message: fmt.Sprintf("Marked late in %s on %s (period %d).", p.SubjectName, p.Date, p.PeriodNumber),
	}
}

type AttendanceExcused struct {
	Date   string
	Reason string
}

func (AttendanceExcused) Kind() Kind { return KindAttendanceExcused }

func (p AttendanceExcused) template() Template {
	return Template{
		Title:   "Absence Excused",
		Message: fmt.Sprintf("The absence on %s was excused: %s.", p.Date, p.Reason),
	}
}

type AttendanceMarked struct {
	ClassName string
	Date      string
}

func (AttendanceMarked) Kind() Kind { return KindAttendanceMarked }

func (p AttendanceMarked) template() Template {
	return Template{
		Title:   "Attendance Recorded",
		Message: fmt.Sprintf("Attendance for %s on %s was recorded.", p.ClassName, p.Date),
	}
}

type AttendanceUpdated struct {
	SubjectName string
	Date        string
	Status      string
}

func (AttendanceUpdated) Kind() Kind { return KindAttendanceUpdated }

func (p AttendanceUpdated) template() Template {
	return Template{
		Title:   "Attendance Updated",
		Message: fmt.Sprintf("Your attendance record for %s on %s changed to %s.", p.SubjectName, p.Date, p.Status),
	}
}

// System family.

type SystemAnnouncement struct {
	Subject string
	Body    string
}

func (SystemAnnouncement) Kind() Kind { return KindSystemAnnouncement }

func (p SystemAnnouncement) template() Template {
	return Template{
		Title:   p.Subject,
		Message: p.Body,
	}
}

type SystemMaintenance struct {
	StartsAt string
	Duration string
}

func (SystemMaintenance) Kind() Kind { return KindSystemMaintenance }

func (p SystemMaintenance) template() Template {
	return Template{
		Title:   "Scheduled Maintenance",
		Message: fmt.Sprintf("The platform will be unavailable starting %s for about %s.", p.StartsAt, p.Duration),
	}
}

type SystemUpdate struct {
	Version string
}

func (SystemUpdate) Kind() Kind { return KindSystemUpdate }

func (p SystemUpdate) template() Template {
	return Template{
		Title:   "Platform Updated",
		Message: fmt.Sprintf("The platform was updated to version %s.", p.Version),
	}
}

type PasswordChanged struct{}

func (PasswordChanged) Kind() Kind { return KindPasswordChanged }

func (PasswordChanged) template() Template {
	return Template{
		Title:   "Password Changed",
		Message: "Your account password was changed. If this wasn't you, contact support immediately.",
	}
}

type AccountUpdated struct{}

func (AccountUpdated) Kind() Kind { return KindAccountUpdated }

func (AccountUpdated) template() Template {
	return Template{
		Title:   "Account Updated",
		Message: "Your account details were updated.",
	}
}

type TimetableChanged struct {
	ClassName     string
	EffectiveDate string
}

func (TimetableChanged) Kind() Kind { return KindTimetableChanged }

func (p TimetableChanged) template() Template {
	return Template{
		Title:   "Timetable Changed",
		Message: fmt.Sprintf("The timetable for %s changes starting %s.", p.ClassName, p.EffectiveDate),
	}
}

type ClassEnrolled struct {
	ClassName string
}

func (ClassEnrolled) Kind() Kind { return KindClassEnrolled }

func (p ClassEnrolled) template() Template {
	return Template{
		Title:   "Enrolled in Class",
		Message: fmt.Sprintf("You were enrolled in %s.", p.ClassName),
	}
}

// Message family.

type MessageReceived struct {
	SenderName string
}

func (MessageReceived) Kind() Kind { return KindMessageReceived }

func (p MessageReceived) template() Template {
	return Template{
		Title:   "New Message",
		Message: fmt.Sprintf("You have a new message from %s.", p.SenderName),
	}
}

type GroupMessage struct {
	GroupName  string
	SenderName string
}

func (GroupMessage) Kind() Kind { return KindGroupMessage }

func (p GroupMessage) template() Template {
	return Template{
		Title:   "New Group Message",
		Message: fmt.Sprintf("%s posted in %s.", p.SenderName, p.GroupName),
	}
}

type BroadcastMessage struct {
	SenderName string
	Subject    string
}

func (BroadcastMessage) Kind() Kind { return KindBroadcastMessage }

func (p BroadcastMessage) template() Template {
	return Template{
		Title:   "Announcement",
		Message: fmt.Sprintf("%s sent an announcement: %s.", p.SenderName, p.Subject),
	}
}

type MessageReply struct {
	SenderName string
}

func (MessageReply) Kind() Kind { return KindMessageReply }

func (p MessageReply) template() Template {
	return Template{
		Title:   "New Reply",
		Message: fmt.Sprintf("%s replied to your message.", p.SenderName),
	}
}

type MessageMention struct {
	SenderName string
	GroupName  string
}

func (MessageMention) Kind() Kind { return KindMessageMention }

func (p MessageMention) template() Template {
	return Template{
		Title:   "You Were Mentioned",
		Message: fmt.Sprintf("%s mentioned you in %s.", p.SenderName, p.GroupName),
	}
}
