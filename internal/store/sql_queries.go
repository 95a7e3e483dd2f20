package store

const (
	getDeviceKey = `SELECT device_id, public_key_pem, key_algorithm, (EXTRACT(EPOCH FROM updated_at))::BIGINT
    FROM security_records
    WHERE pk = $1 AND sk = 'KEY';`

	createDeviceKey = `INSERT INTO security_records (pk, sk, device_id, public_key_pem, key_algorithm, updated_at)
    VALUES ($1, 'KEY', $2, $3, $4, now());`

	// reserveRecord is the conditional write both nonce and idempotency
	// reservations go through. The insert claims a free slot; on
	// conflict the update only fires when the existing reservation has
	// expired, so the affected-row count tells the caller whether the
	// claim succeeded. The compare-and-set runs entirely in the
	// database — required because multiple relay instances share it.
	reserveRecord = `INSERT INTO security_records (pk, sk, device_id, expires_at, updated_at)
    VALUES ($1, $2, $3, $4, now())
    ON CONFLICT (pk, sk) DO UPDATE
    SET expires_at = EXCLUDED.expires_at, dispatched = FALSE, updated_at = now()
    WHERE security_records.expires_at IS NOT NULL AND security_records.expires_at <= now();`

	getDispatched = `SELECT dispatched
    FROM security_records
    WHERE pk = $1 AND sk = $2;`

	markDispatched = `UPDATE security_records
    SET dispatched = TRUE, updated_at = now()
    WHERE pk = $1 AND sk = $2;`

	deleteExpired = `DELETE FROM security_records
    WHERE expires_at IS NOT NULL AND expires_at <= now();`
)
