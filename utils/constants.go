package veritrans_integration_utils

// Format stored in redis is veritrans-bins:{bin_number} as the key and the gzipped gateway
// response as the value. Structure is a regular key-value pair with a TTL
var BinCacheRedis = "veritrans-bins"

// Table used by the egress logger
var EgressLogTable = "veritrans_egress_logs"
