package hms_dto

type Enterprise struct {
	EnterpriseID   int    `json:"enterpriseId"`
	EnterpriseName string `json:"enterpriseName"`
	Address        string `json:"address,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	IsActive       bool   `json:"isActive"`
	CreatedDate    string `json:"createdDate,omitempty"`
}
