package scans

// ScanRequest is one decoded QR event from a capture device. When Payload is
// set it takes precedence and is parsed into the structured fields.
// swagger:model ScanRequest
type ScanRequest struct {
	Payload       string `json:"payload,omitempty" example:"[Visitor: Jane Cruz][PDL: John Santos][Cell: A1]"`
	VisitorName   string `json:"visitor_name,omitempty"`
	PdlName       string `json:"pdl_name,omitempty"`
	Cell          string `json:"cell,omitempty"`
	Relationship  string `json:"relationship,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	DeviceTime    string `json:"device_time,omitempty"`
	Purpose       string `json:"purpose,omitempty" example:"normal"`
	OnlyCheck     bool   `json:"only_check,omitempty"`
}
