package faq

// Callback ids understood by the menu layer. Kept in sync with the inline
// menu definitions.
const (
	cbGetListed = "get_listed"
	cbICOs      = "icos"
	cbFutarchy  = "futarchy_intro"
	cbProposals = "proposals"
	cbInvestors = "investors"
	cbSupport   = "support_request"
)

const metaContractAddress = "METAwkXcqyXKy1AtsSgJ8JiUHwGCafnZL38n3vYmeta"

// Default returns the curated knowledge base shipped with the bot: the
// token contract address, known project facts and topic pointers.
func Default() *KnowledgeBase {
	entries := []Entry{
		{
			Keywords: []string{"ca", "contract"},
			Answer:   metaContractAddress,
		},
		{
			Keywords: []string{"umbra"},
			Answer: "Umbra: max supply 28.5 million tokens, minimum target $750K, " +
				"maximum target is blind and will reveal when the ICO ends. " +
				"Token CA: TBA (token not yet launched - check after ICO completion).",
			Buttons: []Button{{Label: "ICOs", Data: cbICOs}},
		},
		{
			Keywords: []string{"docs", "documentation"},
			Answer:   "Documentation: https://docs.metadao.fi/",
		},
	}
	followups := []Followup{
		{Keywords: []string{"listed", "listing", "apply"}, Button: Button{Label: "Get Listed", Data: cbGetListed}},
		{Keywords: []string{"ico", "icos", "sale", "launch", "raise"}, Button: Button{Label: "ICOs", Data: cbICOs}},
		{Keywords: []string{"futarchy", "governance"}, Button: Button{Label: "Introduction to Futarchy", Data: cbFutarchy}},
		{Keywords: []string{"proposal", "proposals"}, Button: Button{Label: "Proposals", Data: cbProposals}},
		{Keywords: []string{"invest", "investor", "investors"}, Button: Button{Label: "For Investors", Data: cbInvestors}},
		{Keywords: []string{"support", "bug", "problem", "issue"}, Button: Button{Label: "Support Request", Data: cbSupport}},
	}
	return New(entries, followups)
}
