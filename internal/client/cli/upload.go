package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/upload"
)

// Select reads the given files and makes them the pending selection, in the
// given order. With no arguments the selection is cleared.
func (a *App) Select(ctx context.Context, args []string) error {
	files, err := upload.LoadFiles(args)
	if err != nil {
		return a.fail(ctx, "select", err)
	}
	previews, err := a.pipeline.Select(files)
	if err != nil {
		return a.fail(ctx, "select", err)
	}
	if len(previews) == 0 {
		fmt.Fprintln(a.out, "Selection cleared")
		return nil
	}
	for _, p := range previews {
		fmt.Fprintln(a.out, p)
	}
	return nil
}

// Upload asks for the exam details and runs the pipeline on the current
// selection. Any attempt past the empty-selection check consumes it.
func (a *App) Upload(ctx context.Context, _ []string) error {
	if len(a.pipeline.Selection()) == 0 {
		return a.fail(ctx, "upload", upload.ErrNoFiles)
	}
	sess, ok := a.holder.Get()
	if !ok {
		// The pipeline rejects the attempt and drops the selection.
		_, err := a.pipeline.Upload(ctx, nil, upload.ExamMeta{})
		return a.fail(ctx, "upload", err)
	}

	meta, err := a.readExamMeta()
	if err != nil {
		return a.fail(ctx, "upload", err)
	}

	res, err := a.pipeline.Upload(ctx, sess, meta)
	if err != nil {
		return a.fail(ctx, "upload", err)
	}

	a.log.Info(ctx, "exam uploaded", "exam_id", res.ExamID, "pages", len(res.Targets))
	fmt.Fprintf(a.out, "Exam %s uploaded (%d pages)\n", res.ExamID, len(res.Targets))
	return nil
}

func (a *App) readExamMeta() (upload.ExamMeta, error) {
	var (
		meta upload.ExamMeta
		err  error
	)
	if meta.UniversityID, err = GetSimpleText(a.reader, "University id", a.out); err != nil {
		return meta, err
	}
	if meta.CourseID, err = GetSimpleText(a.reader, "Course id", a.out); err != nil {
		return meta, err
	}
	if meta.Year, err = GetInt(a.reader, "Year", a.out, 0); err != nil {
		return meta, err
	}
	if meta.ExamType, err = GetSimpleText(a.reader, "Exam type (e.g. midterm, final)", a.out); err != nil {
		return meta, err
	}
	if meta.TeacherName, err = GetSimpleText(a.reader, "Teacher name (optional)", a.out); err != nil {
		return meta, err
	}
	if meta.Title, err = GetSimpleText(a.reader, "Title (optional)", a.out); err != nil {
		return meta, err
	}
	return meta, nil
}
