package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/storage"
)

var samples = []model.ApplicationInput{
	{Company: "Northwind Labs", Role: "Backend Engineer", Date: "2026-07-02", Status: model.StatusApplied, Location: "Remote"},
	{Company: "Fabrikam", Role: "Platform Engineer", Date: "2026-07-15", Status: model.StatusInterview, Location: "Berlin", Notes: "Second round scheduled"},
	{Company: "Contoso", Role: "SRE", Date: "2026-07-21", Status: model.StatusRejected},
	{Company: "Initech", Role: "Software Engineer", Date: "2026-08-04", Status: model.StatusOffer, Location: "Austin, TX", Notes: "Offer expires end of month"},
	{Company: "Globex", Role: "Go Developer", Date: "2026-08-11", Status: model.StatusApplied, Location: "Remote"},
}

func main() {
	store := storage.FromEnv()

	for _, in := range samples {
		app, err := store.Create(in)
		if err != nil {
			log.Fatal("failed to seed record: ", err)
		}
		fmt.Printf("seeded #%d %s - %s\n", app.ID, app.Company, app.Role)
	}

	fmt.Println("======================================")
	fmt.Printf("Seeded %d records into %s\n", len(samples), store.Path())
	fmt.Println("======================================")

	os.Exit(0)
}
