// Command career is a terminal client for the tracker API. It renders the
// stat cards and the filtered list the same way the web view does and drives
// the create/edit form flow.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/client"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/form"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/view"
)

func apiClient() *client.Client {
	base := os.Getenv("CAREER_TRACKER_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return client.New(base)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: career <command> [flags]

commands:
  list    show applications (-status, -search, -asc)
  add     record a new application (-company, -role, -date, -status, -location, -notes)
  edit    update an application (-id plus any field flags)
  delete  remove an application (-id, -yes to skip confirmation)
  stats   show aggregate statistics`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()
	c := apiClient()

	switch os.Args[1] {
	case "list":
		runList(ctx, c, os.Args[2:])
	case "add":
		runAdd(ctx, c, os.Args[2:])
	case "edit":
		runEdit(ctx, c, os.Args[2:])
	case "delete":
		runDelete(ctx, c, os.Args[2:])
	case "stats":
		runStats(ctx, c)
	default:
		usage()
	}
}

func runList(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", view.FilterAll, "status filter (All, Applied, Interview, Offer, Rejected)")
	search := fs.String("search", "", "substring match on company or role")
	asc := fs.Bool("asc", false, "oldest first instead of newest first")
	fs.Parse(args)

	apps, err := c.List(ctx, "", "")
	if err != nil {
		log.Fatal("failed to fetch applications: ", err)
	}

	printCards(view.Counts(apps))
	derived := view.Derive(apps, view.Options{
		StatusFilter:   *status,
		Search:         *search,
		SortDescending: !*asc,
	})
	printList(derived)
}

func runAdd(ctx context.Context, c *client.Client, args []string) {
	f := &form.Form{}
	f.OpenCreate()

	fs := flag.NewFlagSet("add", flag.ExitOnError)
	fs.StringVar(&f.Fields.Company, "company", f.Fields.Company, "company name")
	fs.StringVar(&f.Fields.Role, "role", f.Fields.Role, "role title")
	fs.StringVar(&f.Fields.Date, "date", f.Fields.Date, "application date (YYYY-MM-DD)")
	fs.StringVar(&f.Fields.Status, "status", f.Fields.Status, "status")
	fs.StringVar(&f.Fields.Location, "location", f.Fields.Location, "location")
	fs.StringVar(&f.Fields.Notes, "notes", f.Fields.Notes, "notes")
	fs.Parse(args)

	if !f.PreCheck() {
		log.Fatal("company, role and date are required")
	}

	app, err := c.Create(ctx, f.Fields)
	if err != nil {
		log.Fatal("failed to create application: ", err)
	}
	f.Close()
	fmt.Printf("created #%d %s - %s\n", app.ID, app.Company, app.Role)

	reload(ctx, c)
}

func runEdit(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.Int("id", 0, "application id")
	company := fs.String("company", "", "company name")
	role := fs.String("role", "", "role title")
	date := fs.String("date", "", "application date (YYYY-MM-DD)")
	status := fs.String("status", "", "status")
	location := fs.String("location", "", "location")
	notes := fs.String("notes", "", "notes")
	fs.Parse(args)

	if *id == 0 {
		log.Fatal("-id is required")
	}

	existing, err := c.Get(ctx, *id)
	if err != nil {
		if client.IsNotFound(err) {
			log.Fatalf("no application with id %d", *id)
		}
		log.Fatal("failed to fetch application: ", err)
	}

	f := &form.Form{}
	f.OpenEdit(existing)
	applyIfSet(&f.Fields, *company, *role, *date, *status, *location, *notes)

	if !f.PreCheck() {
		log.Fatal("company, role and date are required")
	}

	app, err := c.Update(ctx, f.EditingID(), f.Fields)
	if err != nil {
		log.Fatal("failed to update application: ", err)
	}
	f.Close()
	fmt.Printf("updated #%d %s - %s (%s)\n", app.ID, app.Company, app.Role, app.Status)

	reload(ctx, c)
}

func runDelete(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int("id", 0, "application id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	if *id == 0 {
		log.Fatal("-id is required")
	}

	if !*yes && !confirm(fmt.Sprintf("Delete application #%d?", *id)) {
		fmt.Println("aborted")
		return
	}

	if err := c.Delete(ctx, *id); err != nil {
		if client.IsNotFound(err) {
			log.Fatalf("no application with id %d", *id)
		}
		log.Fatal("failed to delete application: ", err)
	}
	fmt.Printf("deleted #%d\n", *id)

	reload(ctx, c)
}

func runStats(ctx context.Context, c *client.Client) {
	stats, err := c.Stats(ctx)
	if err != nil {
		log.Fatal("failed to fetch stats: ", err)
	}

	fmt.Printf("total: %d\n", stats.Total)
	for _, status := range model.Statuses {
		fmt.Printf("%-10s %d\n", status, stats.ByStatus[status])
	}
	fmt.Printf("offer rate: %s\n", stats.OfferRate)
}

// reload re-fetches the whole collection after a mutation, the same way the
// web client re-renders from the server instead of patching local state.
func reload(ctx context.Context, c *client.Client) {
	apps, err := c.List(ctx, "", "")
	if err != nil {
		log.Fatal("failed to reload applications: ", err)
	}
	printCards(view.Counts(apps))
	printList(view.Derive(apps, view.Options{SortDescending: true}))
}

func applyIfSet(fields *model.ApplicationInput, company, role, date, status, location, notes string) {
	if company != "" {
		fields.Company = company
	}
	if role != "" {
		fields.Role = role
	}
	if date != "" {
		fields.Date = date
	}
	if status != "" {
		fields.Status = status
	}
	if location != "" {
		fields.Location = location
	}
	if notes != "" {
		fields.Notes = notes
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printCards(counts map[string]int) {
	fmt.Printf("Total %d | Applied %d | Interview %d | Offer %d | Rejected %d\n",
		counts["Total"],
		counts[model.StatusApplied],
		counts[model.StatusInterview],
		counts[model.StatusOffer],
		counts[model.StatusRejected])
}

func printList(apps []model.Application) {
	if len(apps) == 0 {
		fmt.Println("no applications")
		return
	}
	for _, a := range apps {
		line := fmt.Sprintf("#%-4d %s  %-10s %s - %s", a.ID, a.Date, a.Status, a.Company, a.Role)
		if a.Location != "" {
			line += " (" + a.Location + ")"
		}
		fmt.Println(line)
		if a.Notes != "" {
			fmt.Println("      " + a.Notes)
		}
	}
}
