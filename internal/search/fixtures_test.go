package search

import (
	"fmt"
	"math/rand"
	"time"

	"smartjob-utils/pkg/models"
)

var fixtureTitles = []string{
	"Frontend Developer",
	"Backend Engineer",
	"Full-Stack Developer",
	"DevOps Engineer",
	"Data Analyst",
	"Warehouse Associate",
	"Store Manager",
	"Marketing Coordinator",
}

var fixtureCompanies = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella Labs", "Stark Industries",
}

var fixtureLocations = []string{
	"Remote", "San Francisco, CA", "Austin, TX", "Chicago, IL", "New York, NY",
}

var fixtureDescriptions = []string{
	"React and TypeScript required, modern frontend stack",
	"Go microservices on Kubernetes, PostgreSQL storage",
	"Forklift certification required, physical work",
	"CI/CD pipelines, Terraform, AWS infrastructure",
	"Campaign planning and content scheduling",
}

// generatePostings fabricates a deterministic posting batch from a seed. The
// generator lives only in tests; production postings always arrive
// pre-normalized from the caller.
func generatePostings(seed int64, n int) []models.JobPosting {
	rng := rand.New(rand.NewSource(seed))
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	postings := make([]models.JobPosting, n)
	for i := 0; i < n; i++ {
		postings[i] = models.JobPosting{
			ID:          fmt.Sprintf("job-%d", i),
			Title:       fixtureTitles[rng.Intn(len(fixtureTitles))],
			Company:     fixtureCompanies[rng.Intn(len(fixtureCompanies))],
			Location:    fixtureLocations[rng.Intn(len(fixtureLocations))],
			Description: fixtureDescriptions[rng.Intn(len(fixtureDescriptions))],
			Salary:      fmt.Sprintf("$%d,000 - $%d,000", 60+rng.Intn(40), 100+rng.Intn(60)),
			PostedDate:  now.AddDate(0, 0, -rng.Intn(60)),
			URL:         fmt.Sprintf("https://jobs.example.com/%d", i),
		}
	}
	return postings
}
