package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Universities(ctx context.Context, _ []string) error {
	resp, err := a.api.ListUniversities(ctx)
	if err != nil {
		return a.fail(ctx, "universities", err)
	}
	if len(resp.Universities) == 0 {
		fmt.Fprintln(a.out, "No universities yet")
		return nil
	}
	for _, u := range resp.Universities {
		fmt.Fprintf(a.out, "%s  %s\n", u.ID, u.Name)
	}
	return nil
}

// AddUniversity takes the name from the arguments or asks for it.
func (a *App) AddUniversity(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "University name")
	if err != nil {
		return a.fail(ctx, "adduniversity", err)
	}
	resp, err := a.api.CreateUniversity(ctx, name)
	if err != nil {
		return a.fail(ctx, "adduniversity", err)
	}
	fmt.Fprintf(a.out, "Added university %s (id %s)\n", resp.University.Name, resp.University.ID)
	return nil
}

func (a *App) Courses(ctx context.Context, _ []string) error {
	resp, err := a.api.ListCourses(ctx)
	if err != nil {
		return a.fail(ctx, "courses", err)
	}
	if len(resp.Courses) == 0 {
		fmt.Fprintln(a.out, "No courses yet")
		return nil
	}
	for _, c := range resp.Courses {
		fmt.Fprintf(a.out, "%s  %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *App) AddCourse(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "Course name")
	if err != nil {
		return a.fail(ctx, "addcourse", err)
	}
	resp, err := a.api.CreateCourse(ctx, name)
	if err != nil {
		return a.fail(ctx, "addcourse", err)
	}
	fmt.Fprintf(a.out, "Added course %s (id %s)\n", resp.Course.Name, resp.Course.ID)
	return nil
}

// nameArg joins args into a name, prompting when there are none. An empty
// answer is passed through so the server reports the missing name.
func (a *App) nameArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}
