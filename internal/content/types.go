// Package content holds the static records rendered by the VCN console:
// nodes, ledger artifacts, roadmap milestones, governance policies, advisors,
// marketplace opportunities, enterprise clients and the knowledge hub.
package content

// Role is a node's organizational role.
type Role string

const (
	RolePM   Role = "PM"
	RoleDM   Role = "DM"
	RoleLead Role = "LEAD"
	RoleCDO  Role = "CDO"
)

// BadgeType groups mastery badges.
type BadgeType string

const (
	BadgeMastery       BadgeType = "MASTERY"
	BadgeReputation    BadgeType = "REPUTATION"
	BadgeRecognition   BadgeType = "RECOGNITION"
	BadgeCollaboration BadgeType = "COLLABORATION"
)

// User is a node in the network.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       Role     `json:"role"`
	Reputation int      `json:"reputation"`
	Badges     []string `json:"badges"`
	Avatar     string   `json:"avatar"`
}

// ArtifactType classifies a ledger entry.
type ArtifactType string

const (
	ArtifactDeliverable ArtifactType = "Deliverable"
	ArtifactOutcome     ArtifactType = "Outcome"
	ArtifactEndorsement ArtifactType = "Endorsement"
)

// Artifact is a recorded contribution. Verified is the only mutable field.
type Artifact struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId"`
	Title             string       `json:"title"`
	Type              ArtifactType `json:"type"`
	Timestamp         string       `json:"timestamp"`
	Verified          bool         `json:"verified"`
	ScoreContribution int          `json:"scoreContribution"`
}

// MilestoneStatus is a roadmap milestone's lifecycle stage.
type MilestoneStatus string

const (
	MilestoneInDevelopment MilestoneStatus = "In Development"
	MilestoneLive          MilestoneStatus = "Live"
	MilestoneArchived      MilestoneStatus = "Archived"
)

// NetworkMilestone is an entry on the evolution roadmap.
type NetworkMilestone struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Owner       string          `json:"owner"`
	Progress    int             `json:"progress"` // 0-100
	Status      MilestoneStatus `json:"status"`
}

// GovernanceLevel is the scope a policy applies to.
type GovernanceLevel string

const (
	LevelGlobal GovernanceLevel = "Global"
	LevelUnit   GovernanceLevel = "Unit"
	LevelLocal  GovernanceLevel = "Local"
)

// PolicyStatus is a governance policy's adoption state.
type PolicyStatus string

const (
	PolicyActive      PolicyStatus = "Active"
	PolicyUnderReview PolicyStatus = "Under Review"
	PolicyDraft       PolicyStatus = "Draft"
)

// GovernancePolicy is a protocol rule under audit.
type GovernancePolicy struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Impact          string          `json:"impact"`
	GovernanceLevel GovernanceLevel `json:"governanceLevel"`
	Status          PolicyStatus    `json:"status"`
}

// AdvisorPriority ranks an advisor's feedback.
type AdvisorPriority string

const (
	PriorityCritical     AdvisorPriority = "Critical"
	PriorityOptimization AdvisorPriority = "Optimization"
	PriorityVisionary    AdvisorPriority = "Visionary"
)

// AdvisorReview is an advisory board member and their latest feedback.
type AdvisorReview struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	Feedback  string          `json:"feedback"`
	FullBio   string          `json:"fullBio"`
	Rating    float64         `json:"rating"`
	Priority  AdvisorPriority `json:"priority"`
	Avatar    string          `json:"avatar"`
}

// Opportunity is a marketplace initiative nodes can apply reputation to.
type Opportunity struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	RewardRep      int      `json:"rewardRep"`
	RequiredBadges []string `json:"requiredBadges"`
	Description    string   `json:"description"`
	Deadline       string   `json:"deadline"`
}

// ClientStatus is an enterprise's relationship tier.
type ClientStatus string

const (
	ClientActive           ClientStatus = "Active"
	ClientStrategicPartner ClientStatus = "Strategic Partner"
)

// Client is an enterprise using the network.
type Client struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Logo     string       `json:"logo"`
	Industry string       `json:"industry"`
	Status   ClientStatus `json:"status"`
	Location string       `json:"location"`
}

// Sentiment classifies client feedback.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentMixed    Sentiment = "Mixed"
)

// ClientFeedback is a testimonial attached to a client.
type ClientFeedback struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    float64   `json:"rating"`
	Date      string    `json:"date"`
	Sentiment Sentiment `json:"sentiment"`
}

// KPIMetrics is a static snapshot of network counters. It is never
// recomputed from artifact state.
type KPIMetrics struct {
	VerifiedContributors int     `json:"verifiedContributors"`
	CollaborationLift    int     `json:"collaborationLift"`
	PartnerNPS           float64 `json:"partnerNPS"`
	TotalArtifacts       int     `json:"totalArtifacts"`
	SocialCapitalScore   int     `json:"socialCapitalScore"`
}

// TrendPoint is one day of the collaboration velocity series.
type TrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DocCategory is a knowledge hub section group.
type DocCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// DocSection is one knowledge hub article.
type DocSection struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// SectionText is the heading copy for one dashboard section.
type SectionText struct {
	Title    string
	Subtitle string
}

// UIText is the static copy shown around the data.
type UIText struct {
	AITitle       string
	AIDescription string
	LedgerTitle   string
	LedgerDesc    string
	Advisors      SectionText
	Clients       SectionText
	Docs          SectionText
	Marketplace   SectionText
}
