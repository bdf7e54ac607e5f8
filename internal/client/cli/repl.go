package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Universities(ctx context.Context, args []string) error
	AddUniversity(ctx context.Context, args []string) error
	Courses(ctx context.Context, args []string) error
	AddCourse(ctx context.Context, args []string) error
	Exams(ctx context.Context, args []string) error
	Exam(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	Health(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, universities, courses, exams, exam, health, exit"
	helpLoggedIn  = "Available commands: whoami, profile [id], editprofile, follow <id>, unfollow <id>, " +
		"universities, adduniversity, courses, addcourse, exams [key=value...], exam <id>, like <id>, unlike <id>, " +
		"select <files...>, upload, report, health, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command and the rest are its arguments. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Handlers report their own errors; the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("examhub %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx, args)
		case "whoami":
			_ = a.WhoAmI(ctx, args)
		case "profile":
			_ = a.Profile(ctx, args)
		case "editprofile":
			_ = a.EditProfile(ctx, args)
		case "follow":
			_ = a.Follow(ctx, args)
		case "unfollow":
			_ = a.Unfollow(ctx, args)
		case "universities":
			_ = a.Universities(ctx, args)
		case "adduniversity":
			_ = a.AddUniversity(ctx, args)
		case "courses":
			_ = a.Courses(ctx, args)
		case "addcourse":
			_ = a.AddCourse(ctx, args)
		case "exams":
			_ = a.Exams(ctx, args)
		case "exam":
			_ = a.Exam(ctx, args)
		case "like":
			_ = a.Like(ctx, args)
		case "unlike":
			_ = a.Unlike(ctx, args)
		case "select":
			_ = a.Select(ctx, args)
		case "upload":
			_ = a.Upload(ctx, args)
		case "report":
			_ = a.Report(ctx, args)
		case "health":
			_ = a.Health(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
