// Package relay implements the multi-part QR relay protocol: splitting a
// replica snapshot into bounded chunks, decoding scanned payloads,
// accumulating chunks of a transfer until it is complete, and merging the
// reassembled records into a local replica under last-write-wins.
//
// Every operation in this package is synchronous and performs no I/O.
// Persistence of replicas lives in [github.com/MKhiriev/go-sos-relay/internal/store].
package relay
