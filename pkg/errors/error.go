package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// ValidationError represents a rejected order submission: non-positive
	// price or quantity, or an unknown side. Nothing is persisted or indexed.
	ValidationError ErrorCode = "validation_error"
	// OrderNotFoundError represents a referenced order id with no backing record.
	OrderNotFoundError ErrorCode = "order_not_found_error"
	// PersistenceError represents an unavailable shared store or a failed write.
	PersistenceError ErrorCode = "persistence_error"
	// MatchLockError represents a failure to serialize a matching pass.
	MatchLockError ErrorCode = "match_lock_error"
	// TradePublishError represents a failed trade event delivery.
	TradePublishError ErrorCode = "trade_publish_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisSetNXError represents an error when setting a value in Redis with SetNX.
	RedisSetNXError ErrorCode = "redis_setnx_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
	// RedisIncrError represents an error when incrementing a counter in Redis.
	RedisIncrError ErrorCode = "redis_incr_error"
	// RedisEvalError represents an error when evaluating a script in Redis.
	RedisEvalError ErrorCode = "redis_eval_error"
	// RedisZAddError represents an error when adding members to a sorted set in Redis.
	RedisZAddError ErrorCode = "redis_zadd_error"
	// RedisZRemError represents an error when removing members from a sorted set in Redis.
	RedisZRemError ErrorCode = "redis_zrem_error"
	// RedisZRangeError represents an error when reading a range from a sorted set in Redis.
	RedisZRangeError ErrorCode = "redis_zrange_error"
	// RedisTxError represents an error when executing a transactional pipeline in Redis.
	RedisTxError ErrorCode = "redis_tx_error"
)
