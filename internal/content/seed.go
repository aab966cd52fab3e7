package content

func seedUsers() []User {
	return []User{
		{ID: "1", Name: "Sarah Jenkins", Role: RolePM, Reputation: 88, Badges: []string{"Agile Expert", "Top Collaborator"}, Avatar: "https://i.pravatar.cc/150?u=sarah"},
		{ID: "2", Name: "Michael Chen", Role: RoleDM, Reputation: 72, Badges: []string{"Delivery Master"}, Avatar: "https://i.pravatar.cc/150?u=michael"},
		{ID: "3", Name: "Elena Rodriguez", Role: RolePM, Reputation: 95, Badges: []string{"Strategic Vision", "Peer Mentor"}, Avatar: "https://i.pravatar.cc/150?u=elena"},
		{ID: "4", Name: "David Smith", Role: RoleDM, Reputation: 64, Badges: []string{"Efficiency Pro"}, Avatar: "https://i.pravatar.cc/150?u=david"},
	}
}

func seedArtifacts() []Artifact {
	return []Artifact{
		{ID: "a1", UserID: "1", Title: "Q3 Delivery Roadmap", Type: ArtifactDeliverable, Timestamp: "2024-05-15", Verified: true, ScoreContribution: 10},
		{ID: "a2", UserID: "3", Title: "Cross-Team Sync Framework", Type: ArtifactOutcome, Timestamp: "2024-05-16", Verified: true, ScoreContribution: 15},
		{ID: "a3", UserID: "1", Title: "Mentorship on Jira Automations", Type: ArtifactEndorsement, Timestamp: "2024-05-17", Verified: false, ScoreContribution: 5},
		{ID: "a4", UserID: "2", Title: "Vendor SLA Negotiation", Type: ArtifactDeliverable, Timestamp: "2024-05-18", Verified: true, ScoreContribution: 10},
	}
}

func seedMilestones() []NetworkMilestone {
	return []NetworkMilestone{
		{ID: "m1", Title: "Protocol Genesis", Description: "Core consensus and weighting mechanisms established.", Owner: "Network Council", Progress: 100, Status: MilestoneLive},
		{ID: "m2", Title: "VCN Expansion v2", Description: "Onboarding next 500 PMO specialists globally.", Owner: "Operations Lead", Progress: 45, Status: MilestoneInDevelopment},
		{ID: "m3", Title: "Reputation Portability", Description: "W3C Verifiable Credential export system.", Owner: "Engineering", Progress: 20, Status: MilestoneInDevelopment},
	}
}

func seedOpportunities() []Opportunity {
	return []Opportunity{
		{ID: "o1", Title: "Lead: Global Strategy Sync", RewardRep: 50, RequiredBadges: []string{"Strategic Vision"}, Description: "High-visibility role managing the Q4 global alignment workshop.", Deadline: "2024-12-01"},
		{ID: "o2", Title: "Review: AI Integration Spec", RewardRep: 25, RequiredBadges: []string{"Agile Expert"}, Description: "Technical review of the new Jira integration protocols.", Deadline: "2024-11-15"},
		{ID: "o3", Title: "Peer Mentor: Junior DM Cohort", RewardRep: 40, RequiredBadges: []string{"Peer Mentor"}, Description: "Provide 1-on-1 guidance for incoming Delivery Managers.", Deadline: "Ongoing"},
	}
}

func seedPolicies() []GovernancePolicy {
	return []GovernancePolicy{
		{ID: "g1", Title: "Reputation Decay Factor", Impact: "Prevents stagnant authority; requires ongoing verified contributions.", GovernanceLevel: LevelGlobal, Status: PolicyActive},
		{ID: "g2", Title: "Endorsement Fraud Shield", Impact: "Algorithmic detection of mutual endorsement rings.", GovernanceLevel: LevelGlobal, Status: PolicyActive},
		{ID: "g3", Title: "Local Unit Multipliers", Impact: "Adjust weighting based on specific business unit complexity.", GovernanceLevel: LevelUnit, Status: PolicyUnderReview},
	}
}

func seedAdvisors() []AdvisorReview {
	return []AdvisorReview{
		{ID: "e1", Name: "Dr. Aris Thorne", Specialty: "Network Theory", Feedback: "Network density is optimal for expansion to the 500-node tier.", FullBio: "Dr. Thorne specializes in social graph mechanics and professional reputation systems.", Rating: 4.8, Priority: PriorityVisionary, Avatar: "https://i.pravatar.cc/150?u=e1"},
		{ID: "e4", Name: "Soren Kierk", Specialty: "Behavioral Science", Feedback: "The micro-incentive loop is now self-sustaining.", FullBio: "Soren works on psychological reinforcement in digital professional ecosystems.", Rating: 4.9, Priority: PriorityCritical, Avatar: "https://i.pravatar.cc/150?u=e4"},
	}
}

func seedClients() []Client {
	return []Client{
		{ID: "c1", Name: "Global Tech Corp", Logo: "https://logo.clearbit.com/google.com", Industry: "Software & Cloud", Status: ClientStrategicPartner, Location: "San Francisco, CA"},
		{ID: "c2", Name: "FinEdge Ltd", Logo: "https://logo.clearbit.com/stripe.com", Industry: "Financial Services", Status: ClientActive, Location: "London, UK"},
	}
}

func seedFeedback() []ClientFeedback {
	return []ClientFeedback{
		{ID: "f1", ClientID: "c1", Author: "Jonathan Reeves", Role: "Head of Engineering", Content: "VCN visibility is now a core part of our vendor delivery validation.", Rating: 4.8, Date: "2024-10-10", Sentiment: SentimentPositive},
	}
}

func seedMetrics() KPIMetrics {
	return KPIMetrics{
		VerifiedContributors: 1542,
		CollaborationLift:    38,
		PartnerNPS:           9.1,
		TotalArtifacts:       4892,
		SocialCapitalScore:   12450,
	}
}

func seedTrend() []TrendPoint {
	return []TrendPoint{
		{Day: "Mon", Count: 145},
		{Day: "Tue", Count: 188},
		{Day: "Wed", Count: 215},
		{Day: "Thu", Count: 202},
		{Day: "Fri", Count: 230},
		{Day: "Sat", Count: 45},
		{Day: "Sun", Count: 22},
	}
}
