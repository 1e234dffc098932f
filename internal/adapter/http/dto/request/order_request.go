package request

import (
	"strings"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

type CreateOrderRequest struct {
	ClientID   int64            `json:"client_id" binding:"required,gt=0"`
	CarID      int64            `json:"car_id" binding:"required,gt=0"`
	Complaint  string           `json:"complaint" binding:"max=2000"`
	Mileage    int64            `json:"mileage" binding:"gte=0"`
	Prepayment *decimal.Decimal `json:"prepayment" swaggertype:"string" example:"0.00"`
}

func (r CreateOrderRequest) ToInput() workflow.OrderInput {
	in := workflow.OrderInput{
		ClientID:  r.ClientID,
		CarID:     r.CarID,
		Complaint: r.Complaint,
		Mileage:   r.Mileage,
	}
	if r.Prepayment != nil {
		in.Prepayment = *r.Prepayment
	}
	return in
}

// TransitionRequest names the target status of a payload-free transition.
type TransitionRequest struct {
	Target string `json:"target" binding:"required,notblank" example:"Diagnostics"`
}

func (r TransitionRequest) Status() entities.OrderStatus {
	return entities.OrderStatus(strings.TrimSpace(r.Target))
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required,notblank"`
}

type DefectRequest struct {
	DefectTypeID int64  `json:"defect_type_id" binding:"required,gt=0"`
	Comment      string `json:"comment" binding:"max=1000"`
}

type DiagnosisRequest struct {
	Defects []DefectRequest `json:"defects" binding:"required,min=1,dive"`
}

func (r DiagnosisRequest) ToInputs() []workflow.DefectInput {
	out := make([]workflow.DefectInput, 0, len(r.Defects))
	for _, d := range r.Defects {
		out = append(out, workflow.DefectInput{DefectTypeID: d.DefectTypeID, Comment: d.Comment})
	}
	return out
}

// WorkItemRequest either references a catalog service or carries its own
// name and price.
type WorkItemRequest struct {
	ServiceID *int64           `json:"service_id"`
	DefectID  *int64           `json:"defect_id"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price" swaggertype:"string" example:"100.00"`
}

func (r WorkItemRequest) ToInput() workflow.WorkInput {
	return workflow.WorkInput{ServiceID: r.ServiceID, DefectID: r.DefectID, Name: r.Name, Price: r.Price}
}

// PartItemRequest either references a warehouse item or carries its own
// name, brand and unit price.
type PartItemRequest struct {
	WarehouseItemID *int64           `json:"warehouse_item_id"`
	Name            string           `json:"name"`
	Brand           string           `json:"brand"`
	UnitPrice       *decimal.Decimal `json:"unit_price" swaggertype:"string" example:"25.00"`
	Quantity        int64            `json:"quantity" binding:"required,gt=0"`
}

func (r PartItemRequest) ToInput() workflow.PartInput {
	return workflow.PartInput{
		WarehouseItemID: r.WarehouseItemID,
		Name:            r.Name,
		Brand:           r.Brand,
		UnitPrice:       r.UnitPrice,
		Quantity:        r.Quantity,
	}
}

type ProposalRequest struct {
	Works []WorkItemRequest `json:"works" binding:"dive"`
	Parts []PartItemRequest `json:"parts" binding:"dive"`
}

func (r ProposalRequest) ToInput() usecase.ProposalInput {
	in := usecase.ProposalInput{}
	for _, w := range r.Works {
		in.Works = append(in.Works, w.ToInput())
	}
	for _, p := range r.Parts {
		in.Parts = append(in.Parts, p.ToInput())
	}
	return in
}

type PaymentRequest struct {
	Method     string           `json:"method" binding:"required,notblank" example:"card"`
	AmountPaid *decimal.Decimal `json:"amount_paid" binding:"required" swaggertype:"string" example:"150.00"`
}

func (r PaymentRequest) ToPayment() workflow.Payment {
	return workflow.Payment{
		Method:     entities.PaymentMethod(strings.TrimSpace(r.Method)),
		AmountPaid: *r.AmountPaid,
	}
}

type DecisionRequest struct {
	AcceptedWorkIDs []int64         `json:"accepted_work_ids"`
	AcceptedPartIDs []int64         `json:"accepted_part_ids"`
	Payment         *PaymentRequest `json:"payment"`
}

func (r DecisionRequest) ToInput() usecase.DecisionInput {
	in := usecase.DecisionInput{AcceptedWorkIDs: r.AcceptedWorkIDs, AcceptedPartIDs: r.AcceptedPartIDs}
	if r.Payment != nil {
		p := r.Payment.ToPayment()
		in.Payment = &p
	}
	return in
}

type ItemAssignmentRequest struct {
	WorkItemID int64 `json:"work_item_id" binding:"required,gt=0"`
	WorkerID   int64 `json:"worker_id" binding:"required,gt=0"`
}

type AssignmentRequest struct {
	WorkerID int64                   `json:"worker_id" binding:"required,gt=0"`
	Items    []ItemAssignmentRequest `json:"items" binding:"dive"`
}

func (r AssignmentRequest) ToInput() usecase.AssignmentInput {
	in := usecase.AssignmentInput{WorkerID: r.WorkerID}
	for _, it := range r.Items {
		in.Items = append(in.Items, workflow.ItemAssignment{WorkItemID: it.WorkItemID, WorkerID: it.WorkerID})
	}
	return in
}
