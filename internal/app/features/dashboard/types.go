// internal/app/features/dashboard/types.go
package dashboard

import (
	"net/http"

	statsstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/stats"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// metricCard is one of the count tiles at the top of the dashboard.
type metricCard struct {
	Label string
	Total int64
	New7d int64
}

type dashboardData struct {
	viewdata.BaseVM

	Cards []metricCard

	RecentClasses   []statsstore.RecentClass
	UpcomingExams   []statsstore.UpcomingExam
	RecentHomeworks []statsstore.RecentHomework
	Activity        []statsstore.ActivityItem
}

func newDashboardData(r *http.Request, ov *statsstore.Overview) dashboardData {
	return dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Tổng quan", "/dashboard"),
		Cards: []metricCard{
			{Label: "Lớp học", Total: ov.Classes.Total, New7d: ov.Classes.New7d},
			{Label: "Buổi học", Total: ov.Lessons.Total, New7d: ov.Lessons.New7d},
			{Label: "Bài kiểm tra", Total: ov.Exams.Total, New7d: ov.Exams.New7d},
			{Label: "Bài tập", Total: ov.Homeworks.Total, New7d: ov.Homeworks.New7d},
			{Label: "Học sinh", Total: ov.Students.Total, New7d: ov.Students.New7d},
		},
		RecentClasses:   ov.RecentClasses,
		UpcomingExams:   ov.UpcomingExams,
		RecentHomeworks: ov.RecentHomeworks,
		Activity:        ov.Activity,
	}
}
