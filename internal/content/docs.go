package content

// Knowledge hub category ids.
const (
	DocConcepts     = "concepts"
	DocArchitecture = "architecture"
	DocProtocols    = "protocols"
	DocGlossary     = "glossary"
)

func seedUIText() UIText {
	return UIText{
		AITitle:       "VCN Protocol Intelligence Analysis.",
		AIDescription: "Our Strategic AI correlates global network health with localized performance vectors to recommend protocol optimizations and resource allocations.",
		LedgerTitle:   "Network Trust Ledger",
		LedgerDesc:    "Real-time reputation data secured by the VCN consensus protocol.",
		Advisors: SectionText{
			Title:    "Governance Advisory Board",
			Subtitle: "Strategic oversight for the VCN global protocol",
		},
		Clients: SectionText{
			Title:    "Strategic Client Partners",
			Subtitle: "Enterprises leveraging the VCN professional ecosystem",
		},
		Docs: SectionText{
			Title:    "VCN Knowledge Hub",
			Subtitle: "The definitive source for VCN protocol standards and organizational architecture.",
		},
		Marketplace: SectionText{
			Title:    "Network Marketplace",
			Subtitle: "Apply your reputation to high-impact strategic initiatives.",
		},
	}
}

func seedDocCategories() []DocCategory {
	return []DocCategory{
		{ID: DocConcepts, Title: "Core Concepts", Icon: "Sparkles"},
		{ID: DocArchitecture, Title: "Architecture", Icon: "Layers"},
		{ID: DocProtocols, Title: "Protocols", Icon: "ShieldCheck"},
		{ID: DocGlossary, Title: "Glossary", Icon: "Book"},
	}
}

func seedDocSections() []DocSection {
	return []DocSection{
		{
			ID:       "vcn-vision",
			Category: DocConcepts,
			Title:    "Value Creation Networks",
			Content: `A Value Creation Network (VCN) is a decentralized professional infrastructure where value is tracked through contributions rather than hierarchy.

The transition from PMO to VCN marks a shift from administrative oversight to value generation. Nodes in the network are self-sovereign contributors who own their reputation and data.

Core Tenets:
- Transparency: All value transfers are visible on the ledger.
- Meritocracy: Opportunities are routed based on verified mastery.
- Interoperability: Professional identity is portable across enterprise units.`,
		},
		{
			ID:       "trust-mechanics",
			Category: DocConcepts,
			Title:    "Trust & Consensus",
			Content: `In a VCN, trust is a dynamic metric. The network achieves consensus on "Value" through a peer-verification process.

Endorsements act as votes in the system. To prevent sybil attacks and collusion, the VCN Protocol uses an 'Expert Weighting' mechanism where endorsements from nodes with high domain authority carry 2x more weight than base-level nodes.`,
		},
		{
			ID:       "layer-1",
			Category: DocArchitecture,
			Title:    "Layer 1: Identity",
			Content: `The Identity Layer manages self-sovereign professional credentials.

Participants are modeled as 'Nodes' with unique cryptographic signatures. These signatures are used to sign 'Artifacts' (deliverables). This ensures that authorship is immutable and non-repudiable. Identity is further enriched by 'Mastery Badges', verifiable credentials that certify specific technical or strategic skills.`,
		},
		{
			ID:       "layer-2",
			Category: DocArchitecture,
			Title:    "Layer 2: The Ledger",
			Content: `The Ledger Layer is a tamper-proof record of all verified artifacts.

Every time a Roadmap is completed, a Sync is conducted, or a Mentor session is finished, an entry is added to the ledger. This ledger provides the historical data required to calculate the Social Capital score in real-time.`,
		},
		{
			ID:       "consensus-algorithm",
			Category: DocProtocols,
			Title:    "The Reputation Formula",
			Content: `Social Capital (R) is calculated using a tripartite weighted sum:

    R = (0.5 * P) + (0.3 * O) + (0.2 * I)

- P (Peer Endorsements): Calculated via weighted social graph analysis.
- O (Outcome Delivery): Points awarded for verified final artifacts.
- I (Initiative Velocity): Frequent activity and repeat collaboration requests.

Protocol v2.4 introduces 'Decay Logic': reputation decreases by 5% every 30 days of inactivity to ensure current authority reflects active mastery.`,
		},
		{
			ID:       "verification-protocol",
			Category: DocProtocols,
			Title:    "Verification Logic",
			Content: `Artifacts must pass the 2-Peer Verification Protocol before contributing to Social Capital.

1. Submission: Node signs and uploads artifact.
2. Random Selection: The protocol selects 2 peer reviewers with relevant badges.
3. Consensus: If both reviewers verify, the artifact is committed to the ledger. If they disagree, an Advisor node is called for arbitration.`,
		},
		{
			ID:       "glossary-terms",
			Category: DocGlossary,
			Title:    "VCN Terms A-Z",
			Content: `Artifact: A discrete, tangible unit of professional work verified for impact.

Consensus Protocol: The logic used to validate contributions across the network.

Decay Factor: The rate at which reputation points expire to maintain network vitality.

Mastery Badge: A verifiable credential certifying specialized professional capability.

Node: Any individual participant or unit within the VCN ecosystem.

Social Capital: A non-transferable score representing total verified impact and trust.`,
		},
	}
}
