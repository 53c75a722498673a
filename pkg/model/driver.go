package model

// Driver is a competitor entry within one session.
// DriverNumber is only unique within SessionKey.
type Driver struct {
	SessionKey    int    `json:"sessionKey"`
	DriverNumber  int    `json:"driverNumber"`
	BroadcastName string `json:"broadcastName"`
	FullName      string `json:"fullName,omitempty"`
	NameAcronym   string `json:"nameAcronym,omitempty"`
	TeamName      string `json:"teamName,omitempty"`
	TeamColour    string `json:"teamColour,omitempty"`
}
