package model

import "time"

const EnvelopeVersion = "v1"

type Envelope struct {
	Version  string       `json:"version"`
	Success  bool         `json:"success"`
	Data     any          `json:"data,omitempty"`
	Error    *ErrorBody   `json:"error"`
	Warnings []string     `json:"warnings,omitempty"`
	Meta     EnvelopeMeta `json:"meta"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type EnvelopeMeta struct {
	RequestID string         `json:"request_id"`
	Timestamp time.Time      `json:"timestamp"`
	Command   string         `json:"command"`
	Sources   []SourceStatus `json:"sources,omitempty"`
	Cache     CacheStatus    `json:"cache"`
	Partial   bool           `json:"partial"`
}

// SourceStatus reports one upstream read (snapshot service, RPC) made by a
// command.
type SourceStatus struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

type CacheStatus struct {
	Status string `json:"status"`
	AgeMS  int64  `json:"age_ms"`
	Stale  bool   `json:"stale"`
}

type ContractEntry struct {
	ChainID  int64  `json:"chain_id"`
	Chain    string `json:"chain"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Deployed bool   `json:"deployed"`
}

type ChainInfo struct {
	ChainID       int64  `json:"chain_id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	CAIP2         string `json:"caip2"`
	NativeToken   string `json:"native_token"`
	DefaultRPCURL string `json:"default_rpc_url,omitempty"`
	Contracts     int    `json:"contracts"`
}

// DeeplinkResolution is the outcome of reconciling one deep link against a
// market snapshot.
type DeeplinkResolution struct {
	ChainID  int64  `json:"chain_id"`
	Before   any    `json:"before"`
	State    any    `json:"state"`
	Effects  any    `json:"effects"`
	Message  string `json:"message,omitempty"`
	URLAfter string `json:"url_after,omitempty"`
}

type MarketSummary struct {
	Address     string `json:"address"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	IndexName   string `json:"index_name,omitempty"`
	PoolName    string `json:"pool_name"`
	TotalSupply string `json:"total_supply,omitempty"`
	ShiftAvail  bool   `json:"shift_available"`
	Selected    bool   `json:"selected"`
}

// MarketGroup is one GM or GLV listing group after search filtering.
type MarketGroup struct {
	GroupName                    string          `json:"group_name"`
	IsEverythingSelected         bool            `json:"is_everything_selected"`
	IsEverythingFilteredSelected bool            `json:"is_everything_filtered_selected"`
	IsSomethingSelected          bool            `json:"is_something_selected"`
	Markets                      []MarketSummary `json:"markets"`
}
