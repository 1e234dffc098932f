package request

import (
	"testing"

	"service_station/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func TestCreateOrderRequest(t *testing.T) {
	t.Run("string and number amounts", func(t *testing.T) {
		for _, body := range []string{
			`{"client_id":1,"car_id":2,"mileage":50000,"prepayment":"10.50"}`,
			`{"client_id":1,"car_id":2,"mileage":50000,"prepayment":10.50}`,
		} {
			var r CreateOrderRequest
			if err := binding.JSON.BindBody([]byte(body), &r); err != nil {
				t.Fatalf("unexpected error for %s: %v", body, err)
			}
			in := r.ToInput()
			if !in.Prepayment.Equal(decimal.RequireFromString("10.50")) || in.Mileage != 50000 {
				t.Fatalf("unexpected input: %+v", in)
			}
		}
	})

	t.Run("missing prepayment is zero", func(t *testing.T) {
		var r CreateOrderRequest
		if err := binding.JSON.BindBody([]byte(`{"client_id":1,"car_id":2}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.ToInput().Prepayment.IsZero() {
			t.Fatalf("expected zero prepayment")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, body := range []string{
			`{"car_id":2}`,
			`{"client_id":1,"car_id":2,"mileage":-1}`,
			`{"client_id":-1,"car_id":2}`,
		} {
			var r CreateOrderRequest
			if err := binding.JSON.BindBody([]byte(body), &r); err == nil {
				t.Fatalf("expected validation error for %s", body)
			}
		}
	})
}

func TestCancelRequest_NotBlank(t *testing.T) {
	var r CancelRequest
	if err := binding.JSON.BindBody([]byte(`{"reason":"   "}`), &r); err == nil {
		t.Fatalf("expected blank reason to fail")
	}
	if err := binding.JSON.BindBody([]byte(`{"reason":"client left"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecisionRequest_ToInput(t *testing.T) {
	var r DecisionRequest
	body := `{"accepted_work_ids":[1,2],"accepted_part_ids":[],"payment":{"method":" cash ","amount_paid":"30.00"}}`
	if err := binding.JSON.BindBody([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if len(in.AcceptedWorkIDs) != 2 || len(in.AcceptedPartIDs) != 0 {
		t.Fatalf("unexpected ids: %+v", in)
	}
	if in.Payment == nil || in.Payment.Method != entities.PaymentMethodCash || !in.Payment.AmountPaid.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("unexpected payment: %+v", in.Payment)
	}

	var bad DecisionRequest
	if err := binding.JSON.BindBody([]byte(`{"payment":{"method":"cash"}}`), &bad); err == nil {
		t.Fatalf("expected missing amount to fail")
	}
}

func TestProposalRequest_Dive(t *testing.T) {
	var r ProposalRequest
	if err := binding.JSON.BindBody([]byte(`{"parts":[{"name":"Bolt","unit_price":"1.00","quantity":0}]}`), &r); err == nil {
		t.Fatalf("expected zero quantity to fail")
	}

	body := `{"works":[{"service_id":1,"defect_id":4}],"parts":[{"warehouse_item_id":20,"quantity":2}]}`
	if err := binding.JSON.BindBody([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if len(in.Works) != 1 || *in.Works[0].ServiceID != 1 || *in.Works[0].DefectID != 4 || in.Works[0].Price != nil {
		t.Fatalf("unexpected works: %+v", in.Works)
	}
	if len(in.Parts) != 1 || *in.Parts[0].WarehouseItemID != 20 || in.Parts[0].Quantity != 2 {
		t.Fatalf("unexpected parts: %+v", in.Parts)
	}
}

func TestAssignmentRequest_ToInput(t *testing.T) {
	var r AssignmentRequest
	if err := binding.JSON.BindBody([]byte(`{"worker_id":7,"items":[{"work_item_id":3,"worker_id":8}]}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.WorkerID != 7 || len(in.Items) != 1 || in.Items[0].WorkerID != 8 {
		t.Fatalf("unexpected input: %+v", in)
	}
}
