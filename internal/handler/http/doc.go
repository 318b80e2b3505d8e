// Package http implements the hub's REST API.
//
// Rooms register themselves once and then pull and push the replicas of
// their collections. Every room route is authenticated with a short-lived
// token signed with the room key, and pushes carry an HMAC of their records
// under the same key. Tracing, access logging and compression are handled
// here before requests reach the service layer.
package http
