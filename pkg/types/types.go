// Package domain defines the core business types for the deal desk CRM.
package domain

import (
	"slices"
	"time"
)

// EntityKind discriminates between the two scoreable record types.
type EntityKind string

// Entity kind constants.
const (
	KindLead    EntityKind = "lead"
	KindListing EntityKind = "listing"
)

// ContactType is the broker-facing label of an entity in focus lists.
type ContactType string

// Contact type constants.
const (
	ContactBuyer  ContactType = "Buyer"
	ContactSeller ContactType = "Seller"
)

// Industry is a business sector tag shared by leads and listings.
type Industry string

// Industry constants.
const (
	IndustryTechnology    Industry = "Technology"
	IndustryManufacturing Industry = "Manufacturing"
	IndustryService       Industry = "Service"
	IndustryRetail        Industry = "Retail"
	IndustryHealthcare    Industry = "Healthcare"
	IndustryConstruction  Industry = "Construction"
	IndustryHospitality   Industry = "Hospitality"
	IndustryFnB           Industry = "F&B"
)

// Industries lists every known industry in display order.
var Industries = []Industry{
	IndustryTechnology,
	IndustryManufacturing,
	IndustryService,
	IndustryRetail,
	IndustryHealthcare,
	IndustryConstruction,
	IndustryHospitality,
	IndustryFnB,
}

// IsValid reports whether i is one of the known industries.
func (i Industry) IsValid() bool {
	return slices.Contains(Industries, i)
}

// ListingType describes how a business is being offered.
type ListingType string

// Listing type constants.
const (
	ListingSale    ListingType = "Sale"
	ListingRent    ListingType = "Rent"
	ListingVending ListingType = "Vending"
)

// DealStage is a listing's position in the sales pipeline. Transitions are
// not enforced.
type DealStage string

// Deal stage constants.
const (
	StageNew       DealStage = "New"
	StageContacted DealStage = "Contacted"
	StageNDASigned DealStage = "NDA Signed"
	StageOffer     DealStage = "Offer"
	StageClosing   DealStage = "Closing"
	StageSold      DealStage = "Sold"
)

// Stages lists the pipeline stages in order.
var Stages = []DealStage{
	StageNew,
	StageContacted,
	StageNDASigned,
	StageOffer,
	StageClosing,
	StageSold,
}

// MatchTier is the qualitative bucket for a listing/lead pair.
type MatchTier string

// Match tier constants. TierNone means the pair is never surfaced.
const (
	TierIdeal       MatchTier = "Ideal"
	TierGoodFit     MatchTier = "Good Fit"
	TierStretch     MatchTier = "Stretch"
	TierShareWidely MatchTier = "Share Widely"
	TierNone        MatchTier = "None"
)

// SurfacedTiers lists the tiers shown to brokers, in display order.
var SurfacedTiers = []MatchTier{
	TierIdeal,
	TierGoodFit,
	TierStretch,
	TierShareWidely,
}

// LeadStatus is the relationship state of a buyer.
type LeadStatus string

// Lead status constants.
const (
	LeadActive LeadStatus = "Active"
	LeadCold   LeadStatus = "Cold"
	LeadDead   LeadStatus = "Dead"
	LeadPaused LeadStatus = "Paused"
)

// OnboardingStatus tracks a lead's intake form.
type OnboardingStatus string

// Onboarding status constants.
const (
	OnboardingPending   OnboardingStatus = "Pending"
	OnboardingCompleted OnboardingStatus = "Completed"
)

// InteractionType is the channel of a logged touchpoint.
type InteractionType string

// Interaction type constants.
const (
	InteractionCall     InteractionType = "Call"
	InteractionEmail    InteractionType = "Email"
	InteractionMeeting  InteractionType = "Meeting"
	InteractionNote     InteractionType = "Note"
	InteractionWhatsApp InteractionType = "WhatsApp"
)

// Sentiment is an optional read of how an interaction went.
type Sentiment string

// Sentiment constants.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// FeedbackStatus is a lead's response to a shared listing. FeedbackIgnored
// is never stored; it is derived from a stale FeedbackPending.
type FeedbackStatus string

// Feedback status constants.
const (
	FeedbackPositive FeedbackStatus = "Positive"
	FeedbackNegative FeedbackStatus = "Negative"
	FeedbackPending  FeedbackStatus = "Pending"
	FeedbackIgnored  FeedbackStatus = "Ignored"
)

// TaskPriority ranks a broker task.
type TaskPriority string

// Task priority constants.
const (
	TaskHigh   TaskPriority = "High"
	TaskNormal TaskPriority = "Normal"
)

// Lead represents a buyer or investor prospect.
type Lead struct {
	ID          string `json:"id"                    db:"id"`
	Name        string `json:"name"                  db:"name"                validate:"required"`
	Role        string `json:"role,omitempty"        db:"role"`
	Nationality string `json:"nationality,omitempty" db:"nationality"`
	Email       string `json:"email,omitempty"       db:"email"               validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"       db:"phone"`

	// Budget
	MinBudget float64 `json:"min_budget" db:"min_budget" validate:"gte=0"`
	MaxBudget float64 `json:"max_budget" db:"max_budget" validate:"gte=0"`

	// Preferences
	PreferredIndustries []Industry `json:"preferred_industries"          db:"preferred_industries" validate:"dive,industry"`
	LocationPreference  string     `json:"location_preference,omitempty" db:"location_preference"`
	Notes               string     `json:"notes,omitempty"               db:"notes"`

	Status           LeadStatus        `json:"status"                      db:"status"            validate:"omitempty,oneof=Active Cold Dead Paused"`
	OnboardingStatus *OnboardingStatus `json:"onboarding_status,omitempty" db:"onboarding_status"`

	// Outreach
	DateAdded      time.Time  `json:"date_added"                  db:"date_added"`
	LastContactAt  *time.Time `json:"last_contact_date,omitempty" db:"last_contact_date"`
	TouchCountWeek int        `json:"touch_count_week"            db:"touch_count_week"  validate:"gte=0"`

	// PriorityScore is derived. It is rewritten by the scorer on every
	// interaction and recomputed for every focus query.
	PriorityScore int `json:"priority_score" db:"priority_score"`
}

// Prefers reports whether the lead lists the industry as a preference.
func (l *Lead) Prefers(i Industry) bool {
	return slices.Contains(l.PreferredIndustries, i)
}

// Listing represents a business offered for sale, rent, or vending.
type Listing struct {
	ID          string      `json:"id"                     db:"id"`
	Title       string      `json:"title"                  db:"title"        validate:"required"`
	Type        ListingType `json:"listing_type,omitempty" db:"listing_type" validate:"omitempty,oneof=Sale Rent Vending"`
	Description string      `json:"description,omitempty"  db:"description"`
	Industry    Industry    `json:"industry"               db:"industry"     validate:"required,industry"`
	Location    string      `json:"location,omitempty"     db:"location"`

	// Premises
	Sqft       float64  `json:"sqft,omitempty"        db:"sqft"        validate:"gte=0"`
	StaffCount int      `json:"staff_count,omitempty" db:"staff_count" validate:"gte=0"`
	Amenities  []string `json:"amenities,omitempty"   db:"amenities"` // e.g. "Gas Connection", "Terrace"

	// Financials
	AskingPrice float64  `json:"asking_price"          db:"asking_price" validate:"gte=0"`
	AnnualRent  *float64 `json:"annual_rent,omitempty" db:"annual_rent"`
	Revenue     float64  `json:"revenue"               db:"revenue"`
	EBITDA      float64  `json:"ebitda"                db:"ebitda"`
	Cashflow    float64  `json:"cashflow"              db:"cashflow"`

	Stage DealStage `json:"stage" db:"stage" validate:"omitempty,oneof=New Contacted 'NDA Signed' Offer Closing Sold"`

	// Seller
	SellerName    string `json:"seller_name,omitempty"    db:"seller_name"`
	SellerContact string `json:"seller_contact,omitempty" db:"seller_contact"`

	// Outreach
	DateAdded      time.Time  `json:"date_added"                  db:"date_added"`
	LastContactAt  *time.Time `json:"last_contact_date,omitempty" db:"last_contact_date"`
	TouchCountWeek int        `json:"touch_count_week"            db:"touch_count_week" validate:"gte=0"`
	PriorityScore  int        `json:"priority_score"              db:"priority_score"`
}

// ROI returns cash-on-cash return, or 0 when the asking price is zero.
func (l *Listing) ROI() float64 {
	if l.AskingPrice > 0 {
		return l.Cashflow / l.AskingPrice
	}
	return 0
}

// Broker is a partner agent or agency that refers deals. ReferralFee is a
// percentage of the deal value.
type Broker struct {
	ID          string    `json:"id"              db:"id"`
	Name        string    `json:"name"            db:"name"         validate:"required"`
	Firm        string    `json:"firm,omitempty"  db:"firm"`
	Email       string    `json:"email,omitempty" db:"email"        validate:"omitempty,email"`
	DealsClosed int       `json:"deals_closed"    db:"deals_closed" validate:"gte=0"`
	ReferralFee float64   `json:"referral_fee"    db:"referral_fee" validate:"gte=0,lte=100"`
	CreatedAt   time.Time `json:"created_at"      db:"created_at"`
}

// Interaction is an append-only touchpoint logged against a lead or listing.
type Interaction struct {
	ID         string          `json:"id"                  db:"id"`
	EntityID   string          `json:"entity_id"           db:"entity_id"   validate:"required"`
	EntityKind EntityKind      `json:"entity_kind"         db:"entity_kind" validate:"required,oneof=lead listing"`
	Type       InteractionType `json:"type"                db:"type"        validate:"required,oneof=Call Email Meeting Note WhatsApp"`
	Notes      string          `json:"notes,omitempty"     db:"notes"`
	Sentiment  Sentiment       `json:"sentiment,omitempty" db:"sentiment"   validate:"omitempty,oneof=Positive Neutral Negative"`
	Date       time.Time       `json:"date"                db:"date"`
}

// MatchFeedback is the current response of one lead to one shared listing.
// A new status for the same pair supersedes the old record.
type MatchFeedback struct {
	LeadID    string         `json:"lead_id"    db:"lead_id"    validate:"required"`
	ListingID string         `json:"listing_id" db:"listing_id" validate:"required"`
	Status    FeedbackStatus `json:"status"     db:"status"     validate:"required,oneof=Positive Negative Pending"`
	Timestamp time.Time      `json:"timestamp"  db:"timestamp"`
}

// Task is a broker to-do, optionally tied to an entity.
type Task struct {
	ID              string       `json:"id"                          db:"id"`
	Title           string       `json:"title"                       db:"title"             validate:"required"`
	DueDate         time.Time    `json:"due_date"                    db:"due_date"`
	Completed       bool         `json:"completed"                   db:"completed"`
	RelatedEntityID string       `json:"related_entity_id,omitempty" db:"related_entity_id"`
	Priority        TaskPriority `json:"priority"                    db:"priority"          validate:"omitempty,oneof=High Normal"`
	CreatedAt       time.Time    `json:"created_at"                  db:"created_at"`
}

// FocusItem is a lead or listing tagged with its contact type and weekly
// touch cap. Exactly one of Lead or Listing is set, matching Kind.
type FocusItem struct {
	Kind    EntityKind  `json:"kind"`
	Type    ContactType `json:"type"`
	Cap     int         `json:"cap,omitempty"`
	Lead    *Lead       `json:"lead,omitempty"`
	Listing *Listing    `json:"listing,omitempty"`
}

// ID returns the wrapped entity's ID.
func (f *FocusItem) ID() string {
	if f.Kind == KindLead {
		return f.Lead.ID
	}
	return f.Listing.ID
}

// Name returns the lead name or listing title.
func (f *FocusItem) Name() string {
	if f.Kind == KindLead {
		return f.Lead.Name
	}
	return f.Listing.Title
}

// PriorityScore returns the wrapped entity's priority score.
func (f *FocusItem) PriorityScore() int {
	if f.Kind == KindLead {
		return f.Lead.PriorityScore
	}
	return f.Listing.PriorityScore
}

// TouchCountWeek returns the wrapped entity's weekly touch count.
func (f *FocusItem) TouchCountWeek() int {
	if f.Kind == KindLead {
		return f.Lead.TouchCountWeek
	}
	return f.Listing.TouchCountWeek
}

// LastContactAt returns the wrapped entity's last contact time, if any.
func (f *FocusItem) LastContactAt() *time.Time {
	if f.Kind == KindLead {
		return f.Lead.LastContactAt
	}
	return f.Listing.LastContactAt
}

// Match pairs a counterpart entity with its tier.
type Match struct {
	Tier    MatchTier `json:"tier"`
	Lead    *Lead     `json:"lead,omitempty"`
	Listing *Listing  `json:"listing,omitempty"`
}

// OnboardingItem is a lead awaiting intake form completion.
type OnboardingItem struct {
	Lead        Lead `json:"lead"`
	DaysWaiting int  `json:"days_waiting"`
	Late        bool `json:"late"`
}

// FeedbackView is a feedback record with its effective status, which may be
// the derived FeedbackIgnored.
type FeedbackView struct {
	MatchFeedback
	Effective FeedbackStatus `json:"effective_status"`
}

// PipelineSummary holds aggregate counts for the dashboard and digest.
type PipelineSummary struct {
	LeadsTotal      int `json:"leads_total"       db:"leads_total"`
	LeadsActive     int `json:"leads_active"      db:"leads_active"`
	ListingsTotal   int `json:"listings_total"    db:"listings_total"`
	ListingsHot     int `json:"listings_hot"      db:"listings_hot"`
	FeedbackPending int `json:"feedback_pending"  db:"feedback_pending"`
	TasksOpen       int `json:"tasks_open"        db:"tasks_open"`
	OnboardingQueue int `json:"onboarding_queue"  db:"onboarding_queue"`
}
