// Package stats assembles the dashboard overview: collection totals,
// week-over-week deltas, and the short "recent / upcoming" lists. Every
// query runs in its own errgroup slot; a slot that fails leaves zero
// values behind without blocking the others, so a partially degraded
// dashboard still renders.
package stats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/format"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/navigation"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/refs"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

const (
	recentLimit   = 5
	activityLimit = 4
	deltaWindow   = 7 * 24 * time.Hour
)

// Metric is a total plus how much of it arrived in the last seven days.
type Metric struct {
	Total int64
	New7d int64
}

// RecentClass is a dashboard row for a recently created class.
type RecentClass struct {
	ID          string
	Name        string
	MemberCount int
	TeacherName string
	CreatedAt   models.FlexTime
}

// UpcomingExam is a dashboard row for an exam that has not started yet.
type UpcomingExam struct {
	ID        string
	Title     string
	ClassName string
	StartTime models.FlexTime
}

// RecentHomework is a dashboard row for a recently due homework.
type RecentHomework struct {
	ID      string
	Title   string
	Status  string
	DueDate models.FlexTime
}

// ActivityItem is one entry in the dashboard activity feed.
type ActivityItem struct {
	Title string
	Icon  string
	When  string
	Link  string
}

// Overview is everything the dashboard page shows.
type Overview struct {
	Classes   Metric
	Lessons   Metric
	Exams     Metric
	Homeworks Metric
	Students  Metric

	RecentClasses   []RecentClass
	UpcomingExams   []UpcomingExam
	RecentHomeworks []RecentHomework
	Activity        []ActivityItem
}

// Service runs the dashboard queries.
type Service struct {
	classes       *classstore.Store
	lessons       *lessonstore.Store
	exams         *examstore.Store
	homeworks     *homeworkstore.Store
	notifications *notificationstore.Store
	profiles      *profilestore.Store
	log           *zap.Logger
}

func New(
	classes *classstore.Store,
	lessons *lessonstore.Store,
	exams *examstore.Store,
	homeworks *homeworkstore.Store,
	notifications *notificationstore.Store,
	profiles *profilestore.Store,
	log *zap.Logger,
) *Service {
	return &Service{
		classes:       classes,
		lessons:       lessons,
		exams:         exams,
		homeworks:     homeworks,
		notifications: notifications,
		profiles:      profiles,
		log:           log,
	}
}

// Compute gathers the full overview. Individual query failures are logged
// and leave their slot at zero values; Compute itself never fails.
func (s *Service) Compute(ctx context.Context, now time.Time) *Overview {
	ov := &Overview{}
	since := models.NewFlexTime(now.Add(-deltaWindow))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ov.Classes = s.metric(gctx, "classes", s.classes.Count, s.classes.CountCreatedSince, since)
		return nil
	})
	g.Go(func() error {
		ov.Lessons = s.metric(gctx, "lessons", s.lessons.Count, s.lessons.CountCreatedSince, since)
		return nil
	})
	g.Go(func() error {
		ov.Exams = s.metric(gctx, "exams", s.exams.Count, s.exams.CountCreatedSince, since)
		return nil
	})
	g.Go(func() error {
		ov.Homeworks = s.metric(gctx, "homeworks", s.homeworks.Count, s.homeworks.CountCreatedSince, since)
		return nil
	})
	g.Go(func() error {
		ov.Students = s.studentMetric(gctx, since)
		return nil
	})
	g.Go(func() error {
		ov.RecentClasses = s.recentClasses(gctx)
		return nil
	})
	g.Go(func() error {
		ov.UpcomingExams = s.upcomingExams(gctx, now)
		return nil
	})
	g.Go(func() error {
		ov.RecentHomeworks = s.recentHomeworks(gctx)
		return nil
	})
	g.Go(func() error {
		ov.Activity = s.recentActivity(gctx, now)
		return nil
	})

	_ = g.Wait()
	return ov
}

func (s *Service) metric(ctx context.Context, name string,
	count func(context.Context) (int64, error),
	countSince func(context.Context, models.FlexTime) (int64, error),
	since models.FlexTime,
) Metric {
	var m Metric
	total, err := count(ctx)
	if err != nil {
		s.log.Warn("dashboard count failed", zap.String("collection", name), zap.Error(err))
		return m
	}
	m.Total = total

	fresh, err := countSince(ctx, since)
	if err != nil {
		s.log.Warn("dashboard delta failed", zap.String("collection", name), zap.Error(err))
		return m
	}
	m.New7d = fresh
	return m
}

func (s *Service) studentMetric(ctx context.Context, since models.FlexTime) Metric {
	var m Metric
	total, err := s.profiles.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		s.log.Warn("dashboard count failed", zap.String("collection", "profiles"), zap.Error(err))
		return m
	}
	m.Total = total

	fresh, err := s.profiles.CountCreatedSince(ctx, since)
	if err != nil {
		s.log.Warn("dashboard delta failed", zap.String("collection", "profiles"), zap.Error(err))
		return m
	}
	m.New7d = fresh
	return m
}

func (s *Service) recentClasses(ctx context.Context) []RecentClass {
	classes, err := s.classes.ListRecent(ctx, recentLimit)
	if err != nil {
		s.log.Warn("dashboard recent classes failed", zap.Error(err))
		return nil
	}

	out := make([]RecentClass, 0, len(classes))
	for _, cl := range classes {
		out = append(out, RecentClass{
			ID:          cl.ID.Hex(),
			Name:        cl.Name,
			MemberCount: len(cl.Members),
			TeacherName: s.teacherName(ctx, cl.Members),
			CreatedAt:   cl.CreatedAt,
		})
	}
	return out
}

// teacherName finds the first tutor among the class members. Lookups fan
// out through the bounded resolver; a dangling member id resolves to a
// zero profile and is skipped. Classes with no resolvable tutor show
// "no name", matching the member placeholder.
func (s *Service) teacherName(ctx context.Context, members []primitive.ObjectID) string {
	profiles := refs.ResolveAll(ctx, members,
		func(ctx context.Context, id primitive.ObjectID) (models.Profile, error) {
			p, err := s.profiles.GetByID(ctx, id)
			if err != nil {
				return models.Profile{}, err
			}
			return *p, nil
		},
		func(primitive.ObjectID) models.Profile { return models.Profile{} })

	for _, p := range profiles {
		if p.Role == models.RoleTutor {
			return p.Name
		}
	}
	return "no name"
}

func (s *Service) upcomingExams(ctx context.Context, now time.Time) []UpcomingExam {
	exams, err := s.exams.ListUpcoming(ctx, now, recentLimit)
	if err != nil {
		s.log.Warn("dashboard upcoming exams failed", zap.Error(err))
		return nil
	}

	out := make([]UpcomingExam, 0, len(exams))
	for _, e := range exams {
		row := UpcomingExam{
			ID:        e.ID.Hex(),
			Title:     e.Title,
			StartTime: e.StartTime,
		}
		if cl, err := s.classes.GetByID(ctx, e.ClassID); err == nil {
			row.ClassName = cl.Name
		}
		out = append(out, row)
	}
	return out
}

func (s *Service) recentHomeworks(ctx context.Context) []RecentHomework {
	homeworks, err := s.homeworks.ListRecent(ctx, recentLimit)
	if err != nil {
		s.log.Warn("dashboard recent homeworks failed", zap.Error(err))
		return nil
	}

	out := make([]RecentHomework, 0, len(homeworks))
	for _, h := range homeworks {
		out = append(out, RecentHomework{
			ID:      h.ID.Hex(),
			Title:   h.Title,
			Status:  h.Status,
			DueDate: h.DueDate,
		})
	}
	return out
}

func (s *Service) recentActivity(ctx context.Context, now time.Time) []ActivityItem {
	notes, err := s.notifications.ListRecent(ctx, activityLimit)
	if err != nil {
		s.log.Warn("dashboard activity failed", zap.Error(err))
		return nil
	}

	out := make([]ActivityItem, 0, len(notes))
	for _, n := range notes {
		out = append(out, ActivityItem{
			Title: n.Title,
			Icon:  ActivityIcon(n.DocumentType),
			When:  format.TimeAgo(n.CreatedAt.Time, now),
			Link:  navigation.DeepLink(n.DocumentType, n.DocumentID),
		})
	}
	return out
}

// ActivityIcon picks the feed icon for a notification's document type.
func ActivityIcon(documentType string) string {
	switch documentType {
	case models.NotifyClass:
		return "class"
	case models.NotifyExam:
		return "exam"
	case models.NotifyHomework:
		return "homework"
	default:
		return "bell"
	}
}
