package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Fixed identifiers keep the seed idempotent: re-running the seeder never
// duplicates records because every insert lands on the same slug.
var (
	seedDistricts = []domain.District{
		{ID: "2f6d2a1e-54b7-4c29-9a63-0d7f3f1c9b01", NameEN: "Chennai", NameTA: "சென்னை", Slug: "chennai"},
		{ID: "8a1e4f3b-2c69-4d18-b7f2-5e90a6d2c402", NameEN: "Coimbatore", NameTA: "கோயம்புத்தூர்", Slug: "coimbatore"},
		{ID: "c4b7e9d0-1f35-4a86-8c21-7b64f0a3e503", NameEN: "Madurai", NameTA: "மதுரை", Slug: "madurai"},
		{ID: "5d92c3f8-7e41-4b60-a9d5-1c28e6b7f604", NameEN: "Salem", NameTA: "சேலம்", Slug: "salem"},
		{ID: "e81f5a6c-9d23-4f07-b3e8-4a76c1d9a705", NameEN: "Tiruchirappalli", NameTA: "திருச்சிராப்பள்ளி", Slug: "tiruchirappalli"},
		{ID: "1b3c7d9e-6f58-4e34-8d12-9e05b2c4f806", NameEN: "Tirunelveli", NameTA: "திருநெல்வேலி", Slug: "tirunelveli"},
	}

	seedQualifications = []domain.Qualification{
		{ID: "7e2a9c4d-3b16-4d58-9f07-2c81e5a6d910", NameEN: "10th", NameTA: "10ஆம் வகுப்பு", Slug: "10th", Rank: 1},
		{ID: "3f8b1d6e-5c27-4e49-8a16-7d92f0b3c811", NameEN: "12th/HSC", NameTA: "12ஆம் வகுப்பு", Slug: "12th-hsc", Rank: 2},
		{ID: "9a4c3e8f-7d38-4f30-b125-8e03a1d4e712", NameEN: "ITI", NameTA: "ஐடிஐ", Slug: "iti", Rank: 3},
		{ID: "0b5d2f7a-8e49-4a21-9236-9f14b2e5f613", NameEN: "Diploma", NameTA: "பட்டயப்படிப்பு", Slug: "diploma", Rank: 4},
		{ID: "6c1e4a9b-9f50-4b12-8347-0a25c3f6a014", NameEN: "B.E/B.Tech", NameTA: "பி.இ/பி.டெக்", Slug: "be-btech", Rank: 5},
		{ID: "2d7f5b0c-0a61-4c03-9458-1b36d4a7b115", NameEN: "Any Degree", NameTA: "ஏதேனும் பட்டப்படிப்பு", Slug: "any-degree", Rank: 6},
		{ID: "8e3a6c1d-1b72-4d94-a569-2c47e5b8c216", NameEN: "Post Graduate", NameTA: "முதுகலைப் பட்டம்", Slug: "post-graduate", Rank: 7},
	}

	seedCategories = []domain.Category{
		{ID: "4f9b7d2e-2c83-4e85-b670-3d58f6c9d120", NameEN: "TNPSC", NameTA: "டிஎன்பிஎஸ்சி", Slug: "tnpsc", Sector: "state"},
		{ID: "0a5c8e3f-3d94-4f76-8781-4e69a7d0e221", NameEN: "TRB", NameTA: "ஆசிரியர் தேர்வு வாரியம்", Slug: "trb", Sector: "state"},
		{ID: "6b1d9f4a-4e05-4a67-9892-5f70b8e1f322", NameEN: "Police", NameTA: "காவல்துறை", Slug: "police", Sector: "state"},
		{ID: "2c7e0a5b-5f16-4b58-a903-6a81c9f2a423", NameEN: "Banking", NameTA: "வங்கி", Slug: "banking", Sector: "central"},
		{ID: "8d3f1b6c-6a27-4c49-ba14-7b92d0a3b524", NameEN: "Court", NameTA: "நீதிமன்றம்", Slug: "court", Sector: "state"},
		{ID: "4e9a2c7d-7b38-4d30-8b25-8c03e1b4c625", NameEN: "Anganwadi", NameTA: "அங்கன்வாடி", Slug: "anganwadi", Sector: "state"},
	}
)

// seedJobs references the fixed district/qualification/category identifiers
// above. Both postings are published so the public listing is non-empty right
// after seeding.
func seedJobs() []domain.Job {
	lastDate1 := time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)
	lastDate2 := time.Date(2025, 2, 15, 23, 59, 0, 0, time.UTC)
	return []domain.Job{
		{
			ID:               "f5a8d2c6-8c49-4e21-b036-9d14f2c5d730",
			Title:            "TNPSC Group 4 (CCSE-IV) Recruitment 2025",
			Slug:             "tnpsc-group-4-ccse-iv-recruitment-2025",
			Summary:          "Combined Civil Services Examination IV for Junior Assistant, Typist and allied posts.",
			Content:          "Tamil Nadu Public Service Commission invites online applications for Group 4 services. Selection is through a single written examination.",
			Vacancies:        3935,
			Dept:             "Tamil Nadu Public Service Commission",
			Sector:           "state",
			Board:            "TNPSC",
			JobType:          domain.JobTypePermanent,
			PayScale:         "₹19,500 - ₹71,900",
			SalaryFrom:       19500,
			SalaryTo:         71900,
			AgeMin:           18,
			AgeMax:           32,
			Fees:             150,
			SelectionProcess: "Written Exam (CCSE-IV)",
			Mode:             "online",
			LastDate:         &lastDate1,
			PostedAt:         time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			DistrictID:       "2f6d2a1e-54b7-4c29-9a63-0d7f3f1c9b01", // Chennai
			QualificationIDs: []string{"7e2a9c4d-3b16-4d58-9f07-2c81e5a6d910", "3f8b1d6e-5c27-4e49-8a16-7d92f0b3c811"},
			CategoryIDs:      []string{"4f9b7d2e-2c83-4e85-b670-3d58f6c9d120"},
			Tags:             []string{"tnpsc", "group-4", "government"},
			Status:           domain.StatusPublished,
			Lang:             "ta",
		},
		{
			ID:               "1a6b9e3d-9d50-4f12-8147-0e25a3d6e831",
			Title:            "TRB Graduate Teacher Recruitment 2025",
			Slug:             "trb-graduate-teacher-recruitment-2025",
			Summary:          "Recruitment of graduate teachers for government higher secondary schools.",
			Content:          "Teachers Recruitment Board announces direct recruitment of graduate teachers. Candidates must have passed the Teacher Eligibility Test.",
			Vacancies:        2222,
			Dept:             "Teachers Recruitment Board",
			Sector:           "state",
			Board:            "TRB",
			JobType:          domain.JobTypePermanent,
			PayScale:         "₹36,900 - ₹1,16,600",
			SalaryFrom:       36900,
			SalaryTo:         116600,
			AgeMin:           21,
			AgeMax:           40,
			Fees:             600,
			SelectionProcess: "Written Exam + Certificate Verification",
			Mode:             "online",
			LastDate:         &lastDate2,
			PostedAt:         time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
			DistrictID:       "c4b7e9d0-1f35-4a86-8c21-7b64f0a3e503", // Madurai
			QualificationIDs: []string{"2d7f5b0c-0a61-4c03-9458-1b36d4a7b115", "8e3a6c1d-1b72-4d94-a569-2c47e5b8c216"},
			CategoryIDs:      []string{"0a5c8e3f-3d94-4f76-8781-4e69a7d0e221"},
			Tags:             []string{"trb", "teacher", "government"},
			Status:           domain.StatusPublished,
			Lang:             "ta",
		},
	}
}

// SeedRepository populates the store with the sample data set.
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository creates a new seeder.
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

// Seed upserts the sample reference data and jobs. Existing rows are left
// untouched (conflict on slug is ignored), so the endpoint is safe to call
// repeatedly.
func (r *SeedRepository) Seed(ctx context.Context) (*domain.SeedCounts, error) {
	now := time.Now().UTC()

	for _, d := range seedDistricts {
		_, err := r.db.Exec(ctx, `INSERT INTO districts (id, name_en, name_ta, slug, created_at)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT (slug) DO NOTHING`,
			d.ID, d.NameEN, d.NameTA, d.Slug, now)
		if err != nil {
			return nil, mapError("seed district", err)
		}
	}

	for _, q := range seedQualifications {
		_, err := r.db.Exec(ctx, `INSERT INTO qualifications (id, name_en, name_ta, slug, rank, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (slug) DO NOTHING`,
			q.ID, q.NameEN, q.NameTA, q.Slug, q.Rank, now)
		if err != nil {
			return nil, mapError("seed qualification", err)
		}
	}

	for _, c := range seedCategories {
		_, err := r.db.Exec(ctx, `INSERT INTO categories (id, name_en, name_ta, slug, sector, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (slug) DO NOTHING`,
			c.ID, c.NameEN, c.NameTA, c.Slug, c.Sector, now)
		if err != nil {
			return nil, mapError("seed category", err)
		}
	}

	jobs := seedJobs()
	for _, j := range jobs {
		_, err := r.db.Exec(ctx, `INSERT INTO jobs (
			id, title, slug, summary, content, vacancies, dept, sector, board,
			job_type, pay_scale, salary_from, salary_to, age_min, age_max, fees,
			selection_process, mode, last_date, posted_at, district_id,
			qualification_ids, category_ids, tags, status, lang, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (slug) DO NOTHING`,
			j.ID, j.Title, j.Slug, j.Summary, j.Content, j.Vacancies, j.Dept, j.Sector, j.Board,
			string(j.JobType), j.PayScale, j.SalaryFrom, j.SalaryTo, j.AgeMin, j.AgeMax, j.Fees,
			j.SelectionProcess, j.Mode, j.LastDate, j.PostedAt, j.DistrictID,
			j.QualificationIDs, j.CategoryIDs, j.Tags, string(j.Status), j.Lang, now, now)
		if err != nil {
			return nil, mapError("seed job", err)
		}
	}

	return &domain.SeedCounts{
		Districts:      len(seedDistricts),
		Qualifications: len(seedQualifications),
		Categories:     len(seedCategories),
		Jobs:           len(jobs),
	}, nil
}
