package service

import (
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

const (
	seedTimezone        = "Europe/Istanbul"
	seedMaxParticipants = 200
	day                 = 24 * time.Hour
)

// stage offsets in days relative to the seeding instant
type seedEntry struct {
	slug, title, prizes string
	tags                []string
	offsets             [6]int
	initial             domain.Phase
}

var demoSeed = []seedEntry{
	{"ai-innovation-2024", "AI Innovation Hackathon 2024", "1st: 50,000 TRY, 2nd: 30,000 TRY, 3rd: 20,000 TRY",
		[]string{"ai", "machine-learning", "innovation"}, [6]int{-90, -75, -74, -50, -49, -35}, domain.PhaseCompleted},
	{"web3-blockchain-challenge", "Web3 & Blockchain Challenge", "1st: 75,000 TRY, 2nd: 50,000 TRY, 3rd: 30,000 TRY",
		[]string{"blockchain", "web3", "defi", "nft"}, [6]int{-85, -70, -69, -45, -44, -30}, domain.PhaseCompleted},
	{"cloud-infrastructure-2024", "Cloud Infrastructure Hackathon 2024", "1st: 40,000 TRY, 2nd: 25,000 TRY, 3rd: 15,000 TRY",
		[]string{"cloud", "devops", "aws", "docker", "kubernetes"}, [6]int{-65, -50, -49, -25, -24, -10}, domain.PhaseCompleted},
	{"fintech-innovation-2025", "FinTech Innovation Hackathon 2025", "1st: 60,000 TRY, 2nd: 40,000 TRY, 3rd: 20,000 TRY",
		[]string{"fintech", "payments", "security"}, [6]int{-15, 5, 6, 25, 26, 40}, domain.PhaseApplications},
	{"healthcare-tech-challenge", "Healthcare Tech Challenge", "1st: 80,000 TRY, 2nd: 50,000 TRY, 3rd: 30,000 TRY",
		[]string{"healthcare", "telemedicine", "ai"}, [6]int{-12, 8, 9, 28, 29, 43}, domain.PhaseApplications},
	{"edtech-solutions-2025", "EdTech Solutions Hackathon 2025", "1st: 45,000 TRY, 2nd: 30,000 TRY, 3rd: 15,000 TRY",
		[]string{"edtech", "education", "learning"}, [6]int{-10, 10, 11, 30, 31, 45}, domain.PhaseApplications},
	{"fullstack-development-2025", "Full Stack Development Hackathon 2025", "1st: 50,000 TRY, 2nd: 30,000 TRY, 3rd: 20,000 TRY",
		[]string{"fullstack", "react", "nodejs", "api"}, [6]int{-30, -10, -9, 12, 13, 27}, domain.PhaseApplications},
	{"gaming-development-2025", "Gaming Development Hackathon 2025", "1st: 55,000 TRY, 2nd: 35,000 TRY, 3rd: 20,000 TRY",
		[]string{"gaming", "game-dev", "unity", "unreal"}, [6]int{38, 68, 69, 98, 99, 113}, domain.PhaseUpcoming},
	{"quantum-computing-2025", "Quantum Computing Hackathon 2025", "1st: 100,000 TRY, 2nd: 60,000 TRY, 3rd: 40,000 TRY",
		[]string{"quantum", "quantum-computing", "algorithms", "cryptography"}, [6]int{42, 72, 73, 102, 103, 117}, domain.PhaseUpcoming},
	{"space-tech-2025", "Space Technology Hackathon 2025", "1st: 90,000 TRY, 2nd: 55,000 TRY, 3rd: 35,000 TRY",
		[]string{"space", "aerospace", "satellite", "exploration"}, [6]int{48, 78, 79, 108, 109, 123}, domain.PhaseUpcoming},
}

// DemoHackathons returns the built-in seed set with windows placed around
// now. Initial phases are the coarse past/current/future guess and get
// corrected on creation.
func DemoHackathons(now time.Time) []domain.CreateHackathonInput {
	maxParticipants := seedMaxParticipants
	at := func(days int) time.Time {
		return now.Add(time.Duration(days) * day).UTC()
	}

	res := make([]domain.CreateHackathonInput, 0, len(demoSeed))
	for _, s := range demoSeed {
		res = append(res, domain.CreateHackathonInput{
			Slug:        s.slug,
			Title:       s.title,
			Description: s.title + " for builders of every level.",
			Visibility:  domain.VisibilityPublic,
			Window: domain.Window{
				ApplicationOpensAt:  at(s.offsets[0]),
				ApplicationClosesAt: at(s.offsets[1]),
				SubmissionOpensAt:   at(s.offsets[2]),
				SubmissionClosesAt:  at(s.offsets[3]),
				JudgingOpensAt:      at(s.offsets[4]),
				JudgingClosesAt:     at(s.offsets[5]),
				Timezone:            seedTimezone,
			},
			InitialPhase:    s.initial,
			Tags:            s.tags,
			MaxParticipants: &maxParticipants,
			PrizesSummary:   s.prizes,
		})
	}
	return res
}
