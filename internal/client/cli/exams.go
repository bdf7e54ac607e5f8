package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// parseFilters reads key=value arguments of the exams command.
func parseFilters(args []string) (client.ExamFilters, error) {
	var f client.ExamFilters
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return f, usage("exams [university=ID] [course=ID] [year=N] [user=ID] [search=TEXT] [feed=all|following]")
		}
		switch key {
		case "university", "university_id":
			f.UniversityID = client.Ptr(value)
		case "course", "course_id":
			f.CourseID = client.Ptr(value)
		case "user", "user_id":
			f.UserID = client.Ptr(value)
		case "search":
			f.Search = client.Ptr(value)
		case "feed", "feed_type":
			if value != models.FeedAll && value != models.FeedFollowing {
				return f, usage("feed must be all or following")
			}
			f.FeedType = client.Ptr(value)
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return f, usage("year must be a number")
			}
			f.Year = client.Ptr(year)
		default:
			return f, usage("unknown filter " + key)
		}
	}
	return f, nil
}

func (a *App) Exams(ctx context.Context, args []string) error {
	filters, err := parseFilters(args)
	if err != nil {
		return a.fail(ctx, "exams", err)
	}

	resp, err := a.api.ListExams(ctx, filters)
	if err != nil {
		return a.fail(ctx, "exams", err)
	}
	if len(resp.Exams) == 0 {
		fmt.Fprintln(a.out, "No exams found")
		return nil
	}
	for _, e := range resp.Exams {
		fmt.Fprintln(a.out, examLine(e))
	}
	return nil
}

func examLine(e models.Exam) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d %s", e.ID, e.Year, e.ExamType)
	if e.Course != nil {
		fmt.Fprintf(&b, "  %s", e.Course.Name)
	}
	if e.University != nil {
		fmt.Fprintf(&b, " @ %s", e.University.Name)
	}
	if e.User != nil {
		fmt.Fprintf(&b, "  by %s", e.User.Username)
	}
	fmt.Fprintf(&b, "  pages: %d  likes: %d", len(e.Files), e.LikesCount)
	if e.IsLiked {
		b.WriteString(" (liked)")
	}
	return b.String()
}

func (a *App) Exam(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, "exam", usage("exam <exam id>"))
	}
	resp, err := a.api.GetExam(ctx, args[0])
	if err != nil {
		return a.fail(ctx, "exam", err)
	}

	e := resp.Exam
	fmt.Fprintln(a.out, examLine(e))
	if e.Title != "" {
		fmt.Fprintf(a.out, "  title: %s\n", e.Title)
	}
	if e.TeacherName != "" {
		fmt.Fprintf(a.out, "  teacher: %s\n", e.TeacherName)
	}
	for _, f := range e.Files {
		fmt.Fprintf(a.out, "  page %d: %s\n", f.PageOrder, f.FileURL)
	}
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, "like", usage("like <exam id>"))
	}
	resp, err := a.api.LikeExam(ctx, args[0])
	if err != nil {
		return a.fail(ctx, "like", err)
	}
	a.printToggle(resp.Message, "Liked")
	return nil
}

func (a *App) Unlike(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, "unlike", usage("unlike <exam id>"))
	}
	if _, err := a.api.UnlikeExam(ctx, args[0]); err != nil {
		return a.fail(ctx, "unlike", err)
	}
	fmt.Fprintln(a.out, "Unliked")
	return nil
}

// Report asks for the target and reason. The server validates both.
func (a *App) Report(ctx context.Context, _ []string) error {
	var r models.NewReport
	prompts := []struct {
		text string
		dst  *string
	}{
		{"Report type (exam|user)", &r.ReportType},
		{"Reported id", &r.ReportedID},
		{"Reason (wrong_content|spam|copyright|other)", &r.Reason},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.text, a.out)
		if err != nil {
			return a.fail(ctx, "report", err)
		}
		*p.dst = v
	}

	resp, err := a.api.CreateReport(ctx, r)
	if err != nil {
		return a.fail(ctx, "report", err)
	}
	fmt.Fprintf(a.out, "Report %s submitted (%s)\n", resp.Report.ID, resp.Report.Status)
	return nil
}
