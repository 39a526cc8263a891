package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const leadColumns = `id, name, role, nationality, email, phone,
	min_budget, max_budget, preferred_industries, location_preference, notes,
	status, onboarding_status, date_added, last_contact_date,
	touch_count_week, priority_score`

const listingColumns = `id, title, listing_type, description, industry, location,
	sqft, staff_count, amenities,
	asking_price, annual_rent, revenue, ebitda, cashflow, stage,
	seller_name, seller_contact, date_added, last_contact_date,
	touch_count_week, priority_score`

const (
	baseLeadsSelect     = "SELECT " + leadColumns + " FROM leads"
	countLeadsSelect    = "SELECT COUNT(*) FROM leads"
	baseListingsSelect  = "SELECT " + listingColumns + " FROM listings"
	countListingsSelect = "SELECT COUNT(*) FROM listings"
)

// Lead queries.
const (
	queryCreateLead = `
		INSERT INTO leads (
			name, role, nationality, email, phone,
			min_budget, max_budget, preferred_industries, location_preference, notes,
			status, onboarding_status, date_added, last_contact_date,
			touch_count_week, priority_score
		) VALUES (
			@name, @role, @nationality, @email, @phone,
			@min_budget, @max_budget, @preferred_industries, @location_preference, @notes,
			@status, @onboarding_status, @date_added, @last_contact_date,
			@touch_count_week, @priority_score
		)
		RETURNING id`

	queryGetLead = baseLeadsSelect + ` WHERE id = $1`

	queryAllLeads = baseLeadsSelect + ` ORDER BY date_added ASC, id ASC`

	queryUpdateLead = `
		UPDATE leads SET
			name = @name,
			role = @role,
			nationality = @nationality,
			email = @email,
			phone = @phone,
			min_budget = @min_budget,
			max_budget = @max_budget,
			preferred_industries = @preferred_industries,
			location_preference = @location_preference,
			notes = @notes,
			status = @status,
			onboarding_status = @onboarding_status,
			priority_score = @priority_score,
			updated_at = now()
		WHERE id = @id`

	queryDeleteLead = `DELETE FROM leads WHERE id = $1`
)

// Listing queries.
const (
	queryCreateListing = `
		INSERT INTO listings (
			title, listing_type, description, industry, location,
			sqft, staff_count, amenities,
			asking_price, annual_rent, revenue, ebitda, cashflow, stage,
			seller_name, seller_contact, date_added, last_contact_date,
			touch_count_week, priority_score
		) VALUES (
			@title, @listing_type, @description, @industry, @location,
			@sqft, @staff_count, @amenities,
			@asking_price, @annual_rent, @revenue, @ebitda, @cashflow, @stage,
			@seller_name, @seller_contact, @date_added, @last_contact_date,
			@touch_count_week, @priority_score
		)
		RETURNING id`

	queryGetListing = baseListingsSelect + ` WHERE id = $1`

	queryAllListings = baseListingsSelect + ` ORDER BY date_added ASC, id ASC`

	queryUpdateListing = `
		UPDATE listings SET
			title = @title,
			listing_type = @listing_type,
			description = @description,
			industry = @industry,
			location = @location,
			sqft = @sqft,
			staff_count = @staff_count,
			amenities = @amenities,
			asking_price = @asking_price,
			annual_rent = @annual_rent,
			revenue = @revenue,
			ebitda = @ebitda,
			cashflow = @cashflow,
			stage = @stage,
			seller_name = @seller_name,
			seller_contact = @seller_contact,
			priority_score = @priority_score,
			updated_at = now()
		WHERE id = @id`

	queryDeleteListing = `DELETE FROM listings WHERE id = $1`
)

// Outreach queries.
const (
	queryInsertInteraction = `
		INSERT INTO interactions (entity_id, entity_kind, type, notes, sentiment, date)
		VALUES (@entity_id, @entity_kind, @type, @notes, @sentiment, @date)
		RETURNING id`

	// The contact date only moves forward so a back-dated note does not make
	// an entity look fresher than it is.
	queryRecordLeadContact = `
		UPDATE leads SET
			last_contact_date = GREATEST(COALESCE(last_contact_date, $2), $2),
			touch_count_week = touch_count_week + 1,
			priority_score = $3,
			updated_at = now()
		WHERE id = $1`

	queryRecordListingContact = `
		UPDATE listings SET
			last_contact_date = GREATEST(COALESCE(last_contact_date, $2), $2),
			touch_count_week = touch_count_week + 1,
			priority_score = $3,
			updated_at = now()
		WHERE id = $1`

	queryListInteractions = `
		SELECT id, entity_id, entity_kind, type, notes, sentiment, date
		FROM interactions
		WHERE ($1 = '' OR entity_id::text = $1)
		ORDER BY date DESC
		LIMIT $2`

	queryUpdateLeadScore    = `UPDATE leads SET priority_score = $2 WHERE id = $1 AND priority_score <> $2`
	queryUpdateListingScore = `UPDATE listings SET priority_score = $2 WHERE id = $1 AND priority_score <> $2`

	queryResetLeadTouches    = `UPDATE leads SET touch_count_week = 0 WHERE touch_count_week <> 0`
	queryResetListingTouches = `UPDATE listings SET touch_count_week = 0 WHERE touch_count_week <> 0`
	queryRecordTouchReset    = `INSERT INTO touch_resets (rows_affected) VALUES ($1)`
)

// Feedback queries.
const (
	queryUpsertFeedback = `
		INSERT INTO match_feedback (lead_id, listing_id, status, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lead_id, listing_id) DO UPDATE SET
			status = EXCLUDED.status,
			timestamp = EXCLUDED.timestamp`

	queryListFeedback = `
		SELECT lead_id, listing_id, status, timestamp
		FROM match_feedback
		WHERE ($1 = '' OR lead_id::text = $1)
		ORDER BY timestamp DESC`
)

// Broker queries.
const (
	brokerColumns = `id, name, firm, email, deals_closed, referral_fee, created_at`

	queryCreateBroker = `
		INSERT INTO brokers (name, firm, email, deals_closed, referral_fee)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	queryGetBroker = `SELECT ` + brokerColumns + ` FROM brokers WHERE id = $1`

	queryListBrokers = `SELECT ` + brokerColumns + ` FROM brokers ORDER BY deals_closed DESC, name ASC`
)

// Task queries.
const (
	queryCreateTask = `
		INSERT INTO tasks (title, due_date, completed, related_entity_id, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	queryListTasks = `
		SELECT id, title, due_date, completed, COALESCE(related_entity_id::text, ''), priority, created_at
		FROM tasks
		WHERE $1 OR NOT completed
		ORDER BY completed ASC, due_date ASC`

	queryCompleteTask = `UPDATE tasks SET completed = true WHERE id = $1`
)

// Summary queries.
const queryPipelineSummary = `
	SELECT
		(SELECT COUNT(*) FROM leads),
		(SELECT COUNT(*) FROM leads WHERE status = 'Active'),
		(SELECT COUNT(*) FROM listings),
		(SELECT COUNT(*) FROM listings WHERE stage IN ('Offer', 'Closing', 'NDA Signed')),
		(SELECT COUNT(*) FROM match_feedback WHERE status = 'Pending'),
		(SELECT COUNT(*) FROM tasks WHERE NOT completed),
		(SELECT COUNT(*) FROM leads WHERE onboarding_status = 'Pending')`
