// Package domain contains the entities shared by every layer of the
// domain-intelligence engine: typed check results, stored search records,
// liveness snapshots and registrar quotes. Nothing in here talks to the network
// or to a database.
package domain
