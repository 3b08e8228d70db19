package ie

import (
	"sync"

	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// EnterpriseKey identifies a vendor-specific IE handler: the IANA
// Enterprise ID that owns the type-code space, plus the vendor's own
// type code within it (spec.md §6's "registry mechanism... keyed by
// (enterprise_id, vendor_type)").
type EnterpriseKey struct {
	EnterpriseID uint16
	VendorType   uint16
}

// EnterpriseHandler interprets a vendor-specific IE's payload. The
// core treats this payload as opaque (spec.md §6: "vendor payload
// parsing is opaque to the core; the registry returns a handle whose
// interpretation is the host's concern") — the handler itself, and
// whatever type it returns, is entirely the registering host's design.
type EnterpriseHandler func(payload []byte) (any, error)

// EnterpriseRegistry is a concurrent-safe handler registry a host
// populates before parsing, matching spec.md §9's "Enterprise-IE
// registry" design note. It owns no parsing logic of its own: the TLV
// and grouped-IE layers parse every enterprise IE into a RawIE
// regardless of registration (an unrecognized vendor IE is always
// skippable per spec.md §6), and a host calls Interpret after the fact
// to re-decode a RawIE's value through its registered handler, if any.
type EnterpriseRegistry struct {
	mu       sync.RWMutex
	handlers map[EnterpriseKey]EnterpriseHandler
}

// NewEnterpriseRegistry returns an empty, ready-to-use registry.
func NewEnterpriseRegistry() *EnterpriseRegistry {
	return &EnterpriseRegistry{handlers: make(map[EnterpriseKey]EnterpriseHandler)}
}

// Register installs handler for key, replacing any existing handler
// for the same (enterprise_id, vendor_type) pair.
func (r *EnterpriseRegistry) Register(key EnterpriseKey, handler EnterpriseHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key] = handler
}

// Lookup returns the handler registered for key, if any.
func (r *EnterpriseRegistry) Lookup(key EnterpriseKey) (EnterpriseHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[key]
	return h, ok
}

// Interpret re-decodes raw's value through its registered handler.
// raw.Enterprise must be non-nil (raw is not itself enterprise-tagged
// otherwise); the vendor type is raw.Type with the enterprise bit
// cleared. It returns (nil, false, nil) when no handler is registered,
// leaving the RawIE as the caller's fallback representation.
func (r *EnterpriseRegistry) Interpret(raw *RawIE) (any, bool, error) {
	if raw.Enterprise == nil {
		return nil, false, nil
	}
	key := EnterpriseKey{EnterpriseID: *raw.Enterprise, VendorType: raw.Type &^ tlv.EnterpriseBit}
	h, ok := r.Lookup(key)
	if !ok {
		return nil, false, nil
	}
	v, err := h(raw.Value)
	if err != nil {
		return nil, true, err
	}
	return v, true, nil
}
