package domain

// Referral economy. Points only ever go up.
const (
	ClickPoints       = 1  // per attributed click, while under the daily cap
	SignupBonusPoints = 10 // one-time bonus per globally-unique referred email
	DailyClickCap     = 30 // attributed clicks per code per UTC day that still earn points
)

const (
	VisitorCookieName   = "vid"
	VisitorCookieMaxAge = 365 * 24 * 60 * 60 // one year, in seconds
)
