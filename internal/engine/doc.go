// Package engine is the aggregation core. It fans contract-import requests
// out to per-protocol generators, folds their heterogeneous outputs into
// per-protocol buckets, provisions support directories at most once per
// protocol, renders the accumulated state into the two registry artifacts,
// and returns the deduplicated dependency-pack list.
package engine
