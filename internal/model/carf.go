package model

// Approval status values stored in the CUSTOMER DATA sheet's approvestatus
// column. A draft row carries an empty status.
const (
	StatusDraft     = ""
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusReturned  = "RETURNED"
	StatusCancelled = "CANCELLED"
)

// Approval levels in sign-off order.
const (
	LevelFirstApprover   = "FIRST_APPROVER"
	LevelSecondApprover  = "SECOND_APPROVER"
	LevelThirdApprover   = "THIRD_APPROVER"
	LevelComplianceFinal = "COMPLIANCE_FINAL"
)

// ApprovalChain is the fixed sign-off order for every customer type.
var ApprovalChain = []string{
	LevelFirstApprover,
	LevelSecondApprover,
	LevelThirdApprover,
	LevelComplianceFinal,
}

// NextLevel returns the level after current, or false when current is the
// final one (or unknown).
func NextLevel(current string) (string, bool) {
	for i, lvl := range ApprovalChain {
		if lvl == current && i+1 < len(ApprovalChain) {
			return ApprovalChain[i+1], true
		}
	}
	return "", false
}

// Customer classification values.
const (
	TypePersonal    = "PERSONAL"
	TypeCorporation = "CORPORATION"

	CustTypeHighRisk  = "HIGH RISK ACCOUNTS"
	CustTypeLiveSales = "LIVE SALES"

	RequestForActivation   = "ACTIVATION"
	RequestForDeactivation = "DEACTIVATION"
	RequestForEdit         = "EDIT"
)

// CustomerFormRecord is one CARF row in the CUSTOMER DATA sheet. The sheet
// tag names the backing column; mapping is always header-driven, so column
// order in the sheet is free to change. List-valued fields are joined with
// ", " on write and split on read.
type CustomerFormRecord struct {
	RowID   string `sheet:"#" json:"rowId"`
	Gencode string `sheet:"gencode" json:"gencode"`

	CustType   string   `sheet:"custtype" json:"custtype"`
	RequestFor string   `sheet:"requestfor" json:"requestfor"`
	IsMother   string   `sheet:"ismother" json:"ismother"`
	Type       string   `sheet:"type" json:"type"`
	SaleType   []string `sheet:"saletype" json:"saletype"`

	SoldToParty string `sheet:"soldtoparty" json:"soldtoparty"`
	ShipToParty string `sheet:"shiptoparty" json:"shiptoparty"`
	FirstName   string `sheet:"firstname" json:"firstname"`
	MiddleName  string `sheet:"middlename" json:"middlename"`
	LastName    string `sheet:"lastname" json:"lastname"`
	BusStyle    string `sheet:"busstyle" json:"busstyle"`
	TIN         string `sheet:"tin" json:"tin"`
	IDType      string `sheet:"idtype" json:"idtype"`

	BillAddress   string `sheet:"billaddress" json:"billaddress"`
	DelAddress    string `sheet:"deladdress" json:"deladdress"`
	StoreCode     string `sheet:"storecode" json:"storecode"`
	BUCenter      string `sheet:"bucenter" json:"bucenter"`
	ContactPerson string `sheet:"contactperson" json:"contactperson"`
	ContactNumber string `sheet:"contactnumber" json:"contactnumber"`
	Position      string `sheet:"position" json:"position"`
	Email         string `sheet:"email" json:"email"`

	Region              string `sheet:"region" json:"region"`
	District            string `sheet:"district" json:"district"`
	SalesOrg            string `sheet:"salesinfosalesorg" json:"salesinfosalesorg"`
	DistributionChannel string `sheet:"salesinfodistributionchannel" json:"salesinfodistributionchannel"`
	Division            string `sheet:"salesinfodivision" json:"salesinfodivision"`
	SalesTerritory      string `sheet:"salesterritory" json:"salesterritory"`
	TerritoryRegion     string `sheet:"territoryregion" json:"territoryregion"`
	TerritoryProvince   string `sheet:"territoryprovince" json:"territoryprovince"`
	TerritoryCity       string `sheet:"territorycity" json:"territorycity"`

	BOSCode string `sheet:"boscode" json:"boscode"`
	SAOCode string `sheet:"saocode" json:"saocode"`
	SAOName string `sheet:"saoname" json:"saoname"`
	SupCode string `sheet:"supcode" json:"supcode"`
	SupName string `sheet:"supname" json:"supname"`
	BCCode  string `sheet:"bccode" json:"bccode"`
	BCName  string `sheet:"bcname" json:"bcname"`

	Terms             string `sheet:"terms" json:"terms"`
	CreditLimit       string `sheet:"creditlimit" json:"creditlimit"`
	TargetVolumeDay   string `sheet:"targetvolumeday" json:"targetvolumeday"`
	TargetVolumeMonth string `sheet:"targetvolumemonth" json:"targetvolumemonth"`
	DateStart         string `sheet:"datestart" json:"datestart"`
	DateCreated       string `sheet:"datecreated" json:"datecreated"`

	MakerID   string `sheet:"makerid" json:"makerid"`
	MakerName string `sheet:"makername" json:"makername"`

	ApproveStatus      string `sheet:"approvestatus" json:"approvestatus"`
	ApprovalLevel      string `sheet:"approvallevel" json:"approvallevel"`
	FirstApproverName  string `sheet:"firstapprovername" json:"firstapprovername"`
	InitialApproveDate string `sheet:"initialapprovedate" json:"initialapprovedate"`
	SecondApproverName string `sheet:"secondapprovername" json:"secondapprovername"`
	SecondApproverDate string `sheet:"secondapproverdate" json:"secondapproverdate"`
	ThirdApproverName  string `sheet:"thirdapprovername" json:"thirdapprovername"`
	ThirdApproverDate  string `sheet:"thirdapproverdate" json:"thirdapproverdate"`
	FinalApproverName  string `sheet:"finalapprovername" json:"finalapprovername"`
	FinalApproveDate   string `sheet:"finalapprovedate" json:"finalapprovedate"`
	Remarks            string `sheet:"remarks" json:"remarks"`
}
