package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mamisoa/clinic-portal/internal/api"
	"github.com/mamisoa/clinic-portal/internal/config"
	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/navigate"
	"github.com/mamisoa/clinic-portal/internal/portal"
	"github.com/mamisoa/clinic-portal/internal/session"
)

func main() {
	cfg := config.Load()
	log.Printf("Using clinic backend at %s", cfg.ServerURL)

	client := api.NewClient(cfg.ServerURL, cfg.HTTPTimeout)
	store := session.NewFileStore(cfg.StateDir)
	sessions := session.NewManager(store, client)

	app := &app{
		sessions: sessions,
		client:   client,
		path:     "/",
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
	app.run()
}

// app drives the navigator loop: evaluate (path, session), render the
// decided view, apply redirects, dispatch commands to the mounted
// controller. Single-threaded and event-driven, like the UI it stands for.
type app struct {
	sessions *session.Manager
	client   *api.Client
	path     string
	in       *bufio.Scanner
	out      io.Writer

	controller *portal.Controller // mounted portal controller, nil when logged out
	quit       bool
}

func (a *app) run() {
	a.sessions.Initialize()

	for !a.quit {
		dec := navigate.Decide(a.path, a.sessions.Current())
		switch dec.Kind {
		case navigate.KindLoading:
			fmt.Fprintln(a.out, "Loading application...")
		case navigate.KindRedirect:
			a.path = dec.Path
		case navigate.KindResetSession:
			a.sessions.Logout()
			a.controller = nil
			a.path = dec.Path
		case navigate.KindShowLogin:
			a.controller = nil
			a.loginView()
		case navigate.KindShowPortal:
			a.portalView(dec.Role)
		}
	}
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) loginView() {
	fmt.Fprintln(a.out, "\n=== Clinic Portal Login ===")
	username, ok := a.prompt("Username (or 'quit'): ")
	if !ok || username == "quit" {
		a.quit = true
		return
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		a.quit = true
		return
	}

	msg, success := a.sessions.Login(context.Background(), username, password)
	fmt.Fprintln(a.out, msg)
	if success {
		a.path = "/"
	}
}

func (a *app) mount(role string) *portal.Controller {
	if a.controller != nil && a.controller.Role() == role {
		return a.controller
	}
	if role == models.RoleDoctor {
		a.controller = portal.NewDoctor(a.client, a.sessions)
	} else {
		a.controller = portal.NewReceptionist(a.client, a.sessions)
	}
	a.controller.LoadList(context.Background())
	return a.controller
}

func (a *app) portalView(role string) {
	ctrl := a.mount(role)
	s := a.sessions.Current()

	fmt.Fprintf(a.out, "\n=== %s portal, welcome %s ===\n", strings.ToUpper(role[:1])+role[1:], s.Username)
	a.renderNotices(ctrl)
	a.renderTable(ctrl.Visible())

	var help string
	if role == models.RoleReceptionist {
		help = "Commands: list | search <term> | add | edit <id> | delete <id> | logout | quit"
	} else {
		help = "Commands: list | search <term> | notes <id> | logout | quit"
	}
	fmt.Fprintln(a.out, help)

	line, ok := a.prompt("> ")
	if !ok {
		a.quit = true
		return
	}
	a.dispatch(ctrl, line)
}

func (a *app) dispatch(ctrl *portal.Controller, line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	ctx := context.Background()

	switch cmd {
	case "quit":
		a.quit = true
	case "logout":
		a.sessions.Logout()
		a.controller = nil
		a.path = "/"
	case "list":
		ctrl.LoadList(ctx)
	case "search":
		ctrl.SetSearch(strings.TrimSpace(arg))
	case "add":
		a.addFlow(ctrl)
	case "edit":
		a.editFlow(ctrl, arg)
	case "delete":
		a.deleteFlow(ctrl, arg)
	case "notes":
		a.notesFlow(ctrl, arg)
	case "":
	default:
		fmt.Fprintln(a.out, "Unknown command.")
	}
}

func (a *app) parseID(arg string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "A numeric patient id is required.")
		return 0, false
	}
	return uint(id), true
}

func (a *app) addFlow(ctrl *portal.Controller) {
	var input models.PatientInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"First name: ", &input.FirstName},
		{"Last name: ", &input.LastName},
		{"Date of birth (YYYY-MM-DD): ", &input.DOB},
		{"Gender: ", &input.Gender},
		{"Contact: ", &input.Contact},
		{"Address: ", &input.Address},
	}
	for _, f := range fields {
		v, ok := a.prompt(f.label)
		if !ok {
			a.quit = true
			return
		}
		*f.dst = v
	}
	ctrl.Create(context.Background(), input)
}

func (a *app) editFlow(ctrl *portal.Controller, arg string) {
	id, ok := a.parseID(arg)
	if !ok {
		return
	}
	ctx := context.Background()
	if !ctrl.BeginEdit(ctx, id) {
		return
	}
	p := ctrl.EditingPatient()

	// Blank input keeps the current value.
	fields := []struct {
		label string
		dst   *string
	}{
		{"First name", &p.FirstName},
		{"Last name", &p.LastName},
		{"Date of birth", &p.DOB},
		{"Gender", &p.Gender},
		{"Contact", &p.Contact},
		{"Address", &p.Address},
	}
	for _, f := range fields {
		v, ok := a.prompt(fmt.Sprintf("%s [%s]: ", f.label, *f.dst))
		if !ok {
			a.quit = true
			return
		}
		if v != "" {
			*f.dst = v
		}
	}

	for ctrl.EditOpen() {
		if ctrl.SubmitEdit(ctx) {
			break
		}
		a.renderNotices(ctrl)
		again, ok := a.prompt("Retry? (y/n): ")
		if !ok || again != "y" {
			ctrl.CancelEdit()
		}
	}
}

func (a *app) deleteFlow(ctrl *portal.Controller, arg string) {
	id, ok := a.parseID(arg)
	if !ok {
		return
	}
	name := ""
	for _, p := range ctrl.Patients() {
		if p.ID == id {
			name = p.FullName()
		}
	}
	ctrl.BeginDelete(id, name)
	if !ctrl.DeleteOpen() {
		return
	}

	confirm, ok := a.prompt(fmt.Sprintf("Delete patient %s? (y/n): ", name))
	if !ok || confirm != "y" {
		ctrl.CancelDelete()
		return
	}

	ctx := context.Background()
	for ctrl.DeleteOpen() {
		if ctrl.ConfirmDelete(ctx) {
			break
		}
		a.renderNotices(ctrl)
		again, ok := a.prompt("Retry? (y/n): ")
		if !ok || again != "y" {
			ctrl.CancelDelete()
		}
	}
}

func (a *app) notesFlow(ctrl *portal.Controller, arg string) {
	id, ok := a.parseID(arg)
	if !ok {
		return
	}
	var row *models.Patient
	for i := range ctrl.Patients() {
		if ctrl.Patients()[i].ID == id {
			row = &ctrl.Patients()[i]
		}
	}
	if row == nil {
		fmt.Fprintln(a.out, "No such patient in the current list.")
		return
	}
	ctrl.BeginNotes(row.ID, row.FullName(), row.DoctorNotes, row.Status)
	if !ctrl.NotesOpen() {
		return
	}
	draft := ctrl.EditingNotes()

	if v, ok := a.prompt(fmt.Sprintf("Doctor notes [%s]: ", draft.DoctorNotes)); ok {
		if v != "" {
			draft.DoctorNotes = v
		}
	} else {
		a.quit = true
		return
	}
	if v, ok := a.prompt(fmt.Sprintf("Status (active/discharged/on_leave) [%s]: ", draft.Status)); ok {
		if v != "" {
			draft.Status = v
		}
	} else {
		a.quit = true
		return
	}

	ctx := context.Background()
	for ctrl.NotesOpen() {
		if ctrl.SubmitNotes(ctx) {
			break
		}
		a.renderNotices(ctrl)
		again, ok := a.prompt("Retry? (y/n): ")
		if !ok || again != "y" {
			ctrl.CancelNotes()
		}
	}
}

func (a *app) renderNotices(ctrl *portal.Controller) {
	for _, n := range []models.Notification{
		ctrl.ListNotice, ctrl.FormNotice, ctrl.EditNotice, ctrl.DeleteNotice, ctrl.NotesNotice,
	} {
		if !n.IsZero() {
			fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Message)
		}
	}
}

func (a *app) renderTable(patients []models.Patient) {
	if len(patients) == 0 {
		fmt.Fprintln(a.out, "No patients to display.")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tDOB\tGender\tContact\tStatus\tNotes")
	for _, p := range patients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.FullName(), p.DOB, p.Gender, p.Contact, p.Status, p.DoctorNotes)
	}
	w.Flush()
}
