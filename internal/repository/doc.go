// Package repository holds the storage errors shared by the domain services
// and their backing stores. The repository interfaces live next to the
// services that consume them.
package repository
