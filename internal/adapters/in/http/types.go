package http

import "time"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type newBill struct {
	BillCode    string `json:"billCode"`
	CustName    string `json:"custName"`
	CustPhone   string `json:"custPhone"`
	CustAddress string `json:"custAddress"`
	Amount      int64  `json:"amount"`
	IsTransfer  bool   `json:"isTransfer"`
	ShipperID   int64  `json:"shipperId"`
}

type createBillsRequest struct {
	Bills []newBill `json:"bills"`
}

type exchangeBillRequest struct {
	ShipperID  int64 `json:"shipperId"`
	Amount     int64 `json:"amount"`
	IsTransfer bool  `json:"isTransfer"`
}

type markTransferRequest struct {
	Value bool `json:"value"`
}

type billResponse struct {
	BillCode     string `json:"billCode"`
	OrgCode      string `json:"orgCode"`
	GroupCode    string `json:"groupCode"`
	CustName     string `json:"custName"`
	CustPhone    string `json:"custPhone"`
	CustAddress  string `json:"custAddress"`
	Amount       int64  `json:"amount"`
	IsTransfer   bool   `json:"isTransfer"`
	ShipperID    int64  `json:"shipperId"`
	ShipperName  string `json:"shipperName"`
	BusinessDate int    `json:"businessDate"`
	Status       string `json:"status"`
}

type submitRequestRequest struct {
	BillCode  string `json:"billCode"`
	Type      string `json:"type"`
	NewAmount int64  `json:"newAmount,omitempty"`
}

type resolveRequestRequest struct {
	Accept bool   `json:"accept"`
	Reason string `json:"reason,omitempty"`
}

type requestResponse struct {
	ID            int64      `json:"id"`
	RequesterID   int64      `json:"requesterId"`
	RequesterName string     `json:"requesterName"`
	BillCode      string     `json:"billCode"`
	Type          string     `json:"type"`
	NewAmount     int64      `json:"newAmount,omitempty"`
	Content       string     `json:"content"`
	Status        string     `json:"status"`
	ApproverID    int64      `json:"approverId,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	BusinessDate  int        `json:"businessDate"`
}

type createShipperRequest struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	ShipperType string `json:"shipperType"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	ShipperID int64  `json:"shipperId,omitempty"`
}
