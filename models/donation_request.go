package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationStatus string

const (
	DonationPending    DonationStatus = "pending"
	DonationInProgress DonationStatus = "inProgress"
	DonationDone       DonationStatus = "done"
	DonationCanceled   DonationStatus = "canceled"
)

type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	Division       string             `bson:"division" json:"division"`
	District       string             `bson:"district" json:"district"`
	Upazila        string             `bson:"upazila" json:"upazila"`
	BloodGroup     string             `bson:"bloodGroup" json:"bloodGroup"`
	HospitalName   string             `bson:"hospitalName" json:"hospitalName"`
	FullAddress    string             `bson:"fullAddress" json:"fullAddress"`
	DonationDate   string             `bson:"donationDate" json:"donationDate"`
	DonationTime   string             `bson:"donationTime" json:"donationTime"`
	RequestMessage string             `bson:"requestMessage" json:"requestMessage"`
	Status         DonationStatus     `bson:"status" json:"status"`
	DonorName      string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail     string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	Date           time.Time          `bson:"date" json:"date"`
}

// DonorAssignment is the payload that moves a request into inProgress.
type DonorAssignment struct {
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}
