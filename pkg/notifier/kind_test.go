package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Category(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindAssignmentCreated, CategoryAssignments},
		{KindAssignmentDueSoon, CategoryAssignments},
		{KindQuizGraded, CategoryQuizzes},
		{KindQuizResultPublished, CategoryQuizzes},
		{KindGradePosted, CategoryGrades},
		{KindGradeComment, CategoryGrades},
		{KindStudentReview, CategoryFeedback},
		{KindTeacherFeedback, CategoryFeedback},
		{KindParentComment, CategoryFeedback},
		{KindAttendanceAbsent, CategoryAttendance},
		{KindAttendanceExcused, CategoryAttendance},
		{KindSystemAnnouncement, CategorySystem},
		{KindPasswordChanged, CategorySystem},
		{KindAccountUpdated, CategorySystem},
		{KindTimetableChanged, CategorySystem},
		{KindMessageReceived, CategoryMessages},
		{KindGroupMessage, CategoryMessages},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Category())
		})
	}
}

func TestKind_Category_TotalOverClosedSet(t *testing.T) {
	for _, kind := range Kinds() {
		c := kind.Category()
		assert.NotEmpty(t, c, "kind %s must classify", kind)
		// Deterministic: same input, same output.
		assert.Equal(t, c, kind.Category())
	}
}

func TestKind_Category_UnknownFallsBackToSystem(t *testing.T) {
	assert.Equal(t, CategorySystem, Kind("not-a-real-kind").Category())
}

func TestKind_DefaultPriority(t *testing.T) {
	high := []Kind{KindAssignmentDueSoon, KindQuizDueSoon, KindAttendanceAbsent, KindStudentReview}
	for _, kind := range high {
		assert.Equal(t, PriorityHigh, kind.DefaultPriority(), "kind %s", kind)
	}

	low := []Kind{KindGradeComment, KindAttendanceExcused, KindAccountUpdated}
	for _, kind := range low {
		assert.Equal(t, PriorityLow, kind.DefaultPriority(), "kind %s", kind)
	}

	// Everything else defaults to medium.
	assert.Equal(t, PriorityMedium, KindGradePosted.DefaultPriority())
	assert.Equal(t, PriorityMedium, KindMessageReceived.DefaultPriority())
	assert.Equal(t, PriorityMedium, Kind("not-a-real-kind").DefaultPriority())
}

func TestKind_DefaultPriority_Total(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.DefaultPriority().Valid(), "kind %s must have a valid priority", kind)
	}
}

func TestPriority_Less(t *testing.T) {
	assert.True(t, PriorityLow.Less(PriorityMedium))
	assert.True(t, PriorityMedium.Less(PriorityHigh))
	assert.True(t, PriorityHigh.Less(PriorityUrgent))
	assert.False(t, PriorityUrgent.Less(PriorityLow))
	assert.False(t, PriorityHigh.Less(PriorityHigh))
}

func TestKinds_CoversClosedSet(t *testing.T) {
	assert.Len(t, Kinds(), 35)
}
