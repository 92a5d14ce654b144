package app

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isSignedIn() bool
	SignIn(ctx context.Context) error
	ShowHome(ctx context.Context) error
	ShowSchedule(ctx context.Context) error
	AddLecture(ctx context.Context) error
	DeleteLecture(ctx context.Context) error
	ShowNotes(ctx context.Context) error
	SetNoteFilter(ctx context.Context) error
	AddTextNote(ctx context.Context) error
	RecordStart(ctx context.Context) error
	RecordStop(ctx context.Context) error
	RecordPlay(ctx context.Context) error
	RecordDiscard(ctx context.Context) error
	SaveVoiceNote(ctx context.Context) error
	ShowFiles(ctx context.Context) error
	UploadFile(ctx context.Context) error
	ShowOffers(ctx context.Context) error
	AcceptOffer(ctx context.Context) error
	CompleteJob(ctx context.Context) error
	ShowEarnings(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ToggleNotification(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own notices. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("unilife> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isSignedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.SignIn(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Sign in first (type 'login')")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Screens:   home, sched, notes, files, offers, earnings, profile")
			printlnFn("Schedule:  addlecture, dellecture")
			printlnFn("Notes:     filter, addnote, rec, stop, play, discard, savevoice")
			printlnFn("Files:     upload")
			printlnFn("Delivery:  accept, complete")
			printlnFn("Profile:   edit, toggle, subscribe, logout")
			printlnFn("Other:     exit")

		case "home":
			_ = a.ShowHome(ctx)

		case "sched", "schedule":
			_ = a.ShowSchedule(ctx)

		case "addlecture":
			_ = a.AddLecture(ctx)

		case "dellecture":
			_ = a.DeleteLecture(ctx)

		case "n", "notes":
			_ = a.ShowNotes(ctx)

		case "filter":
			_ = a.SetNoteFilter(ctx)

		case "addnote":
			_ = a.AddTextNote(ctx)

		case "rec":
			_ = a.RecordStart(ctx)

		case "stop":
			_ = a.RecordStop(ctx)

		case "play":
			_ = a.RecordPlay(ctx)

		case "discard":
			_ = a.RecordDiscard(ctx)

		case "savevoice":
			_ = a.SaveVoiceNote(ctx)

		case "f", "files":
			_ = a.ShowFiles(ctx)

		case "upload":
			_ = a.UploadFile(ctx)

		case "offers":
			_ = a.ShowOffers(ctx)

		case "accept":
			_ = a.AcceptOffer(ctx)

		case "complete":
			_ = a.CompleteJob(ctx)

		case "earnings":
			_ = a.ShowEarnings(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "toggle":
			_ = a.ToggleNotification(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
