package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// User queries.
const (
	queryEnsureUser = `
		INSERT INTO users (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`

	queryGetUser = `
		SELECT id, COALESCE(country_code, ''), COALESCE(city, ''),
			COALESCE(preferred_currency, ''), updated_at
		FROM users
		WHERE id = $1`

	queryUpsertUserLocation = `
		INSERT INTO users (id, country_code, city, preferred_currency, updated_at)
		VALUES (@id, @country_code, NULLIF(@city, ''), NULLIF(@preferred_currency, ''), now())
		ON CONFLICT (id) DO UPDATE SET
			country_code = EXCLUDED.country_code,
			city = EXCLUDED.city,
			preferred_currency = COALESCE(EXCLUDED.preferred_currency, users.preferred_currency),
			updated_at = now()
		RETURNING id, COALESCE(country_code, ''), COALESCE(city, ''),
			COALESCE(preferred_currency, ''), updated_at`
)

// Item queries.
const (
	queryCreateItem = `
		INSERT INTO items (
			id, user_id, title, price, currency, url, store_name, domain,
			created_at, updated_at
		) VALUES (
			@id, @user_id, @title, @price, NULLIF(@currency, ''), NULLIF(@url, ''),
			NULLIF(@store_name, ''), NULLIF(@domain, ''), now(), now()
		)
		RETURNING created_at, updated_at`

	queryGetItem = baseItemsSelect + `
		WHERE user_id = $1 AND id = $2`

	queryDeleteItem = `
		DELETE FROM items WHERE user_id = $1 AND id = $2`
)

// Store queries.
const (
	storeColumns = `domain, name, countries_supported, requires_city, created_at, updated_at`

	queryGetStore = `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE domain = $1`

	queryListStores = `
		SELECT ` + storeColumns + `
		FROM stores
		ORDER BY domain`

	queryUpsertStore = `
		INSERT INTO stores (domain, name, countries_supported, requires_city, created_at, updated_at)
		VALUES (@domain, @name, @countries_supported, @requires_city, now(), now())
		ON CONFLICT (domain) DO UPDATE SET
			name = EXCLUDED.name,
			countries_supported = EXCLUDED.countries_supported,
			requires_city = EXCLUDED.requires_city,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryDeleteStore = `
		DELETE FROM stores WHERE domain = $1`
)

// Shipping rule queries.
const (
	ruleColumns = `store_domain, country_code, ships_to_country, ships_to_city,
		city_whitelist, city_blacklist, updated_at`

	queryListRulesForStore = `
		SELECT ` + ruleColumns + `
		FROM shipping_rules
		WHERE store_domain = $1
		ORDER BY country_code`

	queryListAllRules = `
		SELECT ` + ruleColumns + `
		FROM shipping_rules
		ORDER BY store_domain, country_code`

	queryUpsertRule = `
		INSERT INTO shipping_rules (
			store_domain, country_code, ships_to_country, ships_to_city,
			city_whitelist, city_blacklist, updated_at
		) VALUES (
			@store_domain, @country_code, @ships_to_country, @ships_to_city,
			@city_whitelist, @city_blacklist, now()
		)
		ON CONFLICT (store_domain, country_code) DO UPDATE SET
			ships_to_country = EXCLUDED.ships_to_country,
			ships_to_city = EXCLUDED.ships_to_city,
			city_whitelist = EXCLUDED.city_whitelist,
			city_blacklist = EXCLUDED.city_blacklist,
			updated_at = now()
		RETURNING updated_at`

	queryDeleteRule = `
		DELETE FROM shipping_rules WHERE store_domain = $1 AND country_code = $2`
)
