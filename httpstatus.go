package gtrends

var httpStatusMap = map[int]string{
	400: "Bad Request. \n" +
		"Malformed `req` parameter or unknown enumerated value in it.",
	401: "Unauthorized. Widget token does not match the `req` parameter",
	404: "Invalid URL",
	405: "Invalid HTTP method",
	429: "Rate limit exceeded.\n" +
		"Google throttles by source IP; back off before building new clients",
	500: "Internal Server Error",
	503: "Service Unavailable.\n" +
		"Usually a stale widget token; rebuild the client to obtain a fresh one",
}
