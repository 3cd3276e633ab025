package form

// Form kinds shipped with the bot.
const (
	KindSupportRequest = "support-request"
	KindGetListed      = "get-listed"
)

// SupportRequest collects a contact and a question for the support team.
func SupportRequest() *Definition {
	return &Definition{
		Kind: KindSupportRequest,
		Steps: []Step{
			{Field: "name", Prompt: "To submit a support request, please provide your full name:"},
			{Field: "email", Prompt: "Thank you! Now, please provide your email address so we can contact you if needed."},
			{Field: "question", Prompt: "Now, please describe your issue, question, or bug:"},
		},
		Required: []string{"name", "email", "question"},
		KeyField: "email",
	}
}

// GetListed collects the full project listing application.
func GetListed() *Definition {
	return &Definition{
		Kind: KindGetListed,
		Steps: []Step{
			{
				Field: "project_name_short",
				Prompt: "Great! Let's start with your project details.\n\n" +
					"Please provide your project name and a short description (1-2 sentences):\n\n" +
					"Example: Omnipair - A decentralized exchange aggregator that finds the best prices across multiple DEXs.",
			},
			{
				Field: "project_desc_long",
				Prompt: "Thank you! Now please provide a longer, more detailed description of your project.\n\n" +
					"Explain what your project does, why it's valuable, and why someone should want to participate in its upside.\n" +
					"(This will be displayed on the launchpad website)",
			},
			{
				Field:  "token_name",
				Prompt: "Excellent! Now let's get your token details.\n\nWhat is your token name?\n\nExample: Omnipair",
			},
			{
				Field: "token_ticker",
				Prompt: "What is your token ticker?\n\nExample: OMFG\n\n" +
					"We recommend using memorable and unique tickers.",
			},
			{
				Field: "project_image",
				Prompt: "Please provide the URL for your project image.\n\n" +
					"This will be displayed on the launchpad site and trading venues.\n\n" +
					"Example: https://example.com/project-logo.png",
			},
			{
				Field: "token_image",
				Prompt: "Do you have a different token image, or is it the same as your project image?\n\n" +
					"If it's the same, type 'same'\nIf different, provide the URL for your token image.",
				Validate: SameAs("same", "project_image"),
			},
			{
				Field: "min_raise",
				Prompt: "Now let's discuss fundraising details.\n\nWhat is your minimum raise amount?\n\n" +
					"This is how much your project needs for you to proceed. If the project raises less than this amount, the sale will be refunded.\n\n" +
					"Example: $750,000",
			},
			{
				Field: "monthly_budget",
				Prompt: "What is your monthly team budget?\n\n" +
					"This is how much the team needs every month from the treasury to operate normally. " +
					"Spends larger than this need to be approved by governance.\n\n" +
					"Note: This can be no larger than 1/6th of the minimum raise amount.\n\n" +
					"Example: $50,000",
			},
			{
				Field: "performance_package",
				Prompt: "Performance Package Configuration:\n\n" +
					"After the ICO, 10M tokens go to sale participants and 5M tokens go to liquidity. " +
					"You can choose for up to 15M tokens to be pre-allocated to a performance package.\n\n" +
					"This package is split into 5 equal tranches, unlocking at 2x, 4x, 8x, 16x, and 32x the ICO price.\n\n" +
					"How many tokens do you want to allocate to the performance package? (0 to 15,000,000)\n\n" +
					"Example: 10000000",
			},
			{
				Field: "performance_unlock_time",
				Prompt: "What is the minimum unlock time for the performance package?\n\n" +
					"This must be at least 18 months from ICO date but can be longer if you wish.\n\n" +
					"Example: 24 months",
			},
			{
				Field: "intellectual_property",
				Prompt: "Finally, please list the intellectual properties that the founder(s) will give up to the project's entity.\n\n" +
					"This includes but is not limited to:\n" +
					"• Domain names\n" +
					"• Software/code repositories\n" +
					"• Social media accounts\n" +
					"• Trademarks\n\n" +
					"Please list all intellectual property:",
			},
		},
		Required: []string{
			"project_name_short", "project_desc_long", "token_name", "token_ticker",
			"project_image", "token_image", "min_raise", "monthly_budget",
			"performance_package", "performance_unlock_time", "intellectual_property",
		},
		KeyField: "token_ticker",
	}
}

// All returns the shipped form definitions keyed by kind.
func All() map[string]*Definition {
	return map[string]*Definition{
		KindSupportRequest: SupportRequest(),
		KindGetListed:      GetListed(),
	}
}
