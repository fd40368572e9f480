package accounting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fieldwise/agribooks/internal/accounting"
)

func TestService_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := accounting.NewMockRepository(ctrl)
	svc := accounting.NewService(repo)

	orgID := uuid.New()
	userID := uuid.New()
	income := uuid.New()

	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *accounting.Invoice) error {
			inv.ID = uuid.New()
			inv.InvoiceNumber = "SINV-00001"
			return nil
		})

	inv, err := svc.CreateInvoice(context.Background(), accounting.CreateInvoiceParams{
		OrganizationID: orgID,
		CreatedBy:      userID,
		InvoiceType:    accounting.InvoiceTypeSales,
		PartyName:      "Quinta do Vale",
		InvoiceDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []accounting.CreateInvoiceItemParams{
			{
				ItemName:        "Olive oil 5L",
				Quantity:        dec("4"),
				Rate:            dec("25"),
				TaxAmount:       dec("10"),
				IncomeAccountID: uuidPtr(income),
			},
			{
				ItemName:        "Table olives",
				Quantity:        dec("10"),
				Rate:            dec("5"),
				TaxAmount:       dec("5"),
				IncomeAccountID: uuidPtr(income),
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "SINV-00001", inv.InvoiceNumber)
	assert.Equal(t, accounting.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.Subtotal.Equal(dec("150")), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.TaxTotal.Equal(dec("15")))
	assert.True(t, inv.GrandTotal.Equal(dec("165")))
	assert.True(t, inv.OutstandingAmount.Equal(inv.GrandTotal))

	require.Len(t, inv.Items, 2)
	assert.True(t, inv.Items[0].Amount.Equal(dec("100")))
	assert.True(t, inv.Items[1].Amount.Equal(dec("50")))
}

func TestService_CreateInvoice_RoundsItemAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := accounting.NewMockRepository(ctrl)
	svc := accounting.NewService(repo)

	repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)

	// 3 x 0.333 = 0.999, rounded to 1.00 before it enters the subtotal.
	inv, err := svc.CreateInvoice(context.Background(), accounting.CreateInvoiceParams{
		OrganizationID: uuid.New(),
		CreatedBy:      uuid.New(),
		InvoiceType:    accounting.InvoiceTypePurchase,
		PartyName:      "Cooperativa Agrícola",
		InvoiceDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []accounting.CreateInvoiceItemParams{
			{
				ItemName:         "Fertilizer",
				Quantity:         dec("3"),
				Rate:             dec("0.333"),
				ExpenseAccountID: uuidPtr(uuid.New()),
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, inv.Items[0].Amount.Equal(dec("1.00")), "amount %s", inv.Items[0].Amount)
	assert.True(t, inv.Subtotal.Equal(dec("1.00")))
}

func TestService_CreateInvoice_Validation(t *testing.T) {
	orgID := uuid.New()
	income := uuidPtr(uuid.New())
	expense := uuidPtr(uuid.New())

	validItem := accounting.CreateInvoiceItemParams{
		ItemName:        "Olive oil 5L",
		Quantity:        dec("1"),
		Rate:            dec("25"),
		IncomeAccountID: income,
	}

	tests := []struct {
		name    string
		params  accounting.CreateInvoiceParams
		wantMsg string
	}{
		{
			name: "InvalidType",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    "credit_note",
				PartyName:      "Quinta do Vale",
				Items:          []accounting.CreateInvoiceItemParams{validItem},
			},
			wantMsg: "invalid invoice type",
		},
		{
			name: "MissingParty",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypeSales,
				Items:          []accounting.CreateInvoiceItemParams{validItem},
			},
			wantMsg: "party name is required",
		},
		{
			name: "NoItems",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypeSales,
				PartyName:      "Quinta do Vale",
			},
			wantMsg: "at least one item",
		},
		{
			name: "ZeroQuantity",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypeSales,
				PartyName:      "Quinta do Vale",
				Items: []accounting.CreateInvoiceItemParams{
					{ItemName: "Olive oil 5L", Rate: dec("25"), IncomeAccountID: income},
				},
			},
			wantMsg: "quantity must be greater than zero",
		},
		{
			name: "NegativeRate",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypeSales,
				PartyName:      "Quinta do Vale",
				Items: []accounting.CreateInvoiceItemParams{
					{ItemName: "Olive oil 5L", Quantity: dec("1"), Rate: dec("-5"), IncomeAccountID: income},
				},
			},
			wantMsg: "rate cannot be negative",
		},
		{
			name: "SalesItemWithoutIncomeAccount",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypeSales,
				PartyName:      "Quinta do Vale",
				Items: []accounting.CreateInvoiceItemParams{
					{ItemName: "Olive oil 5L", Quantity: dec("1"), Rate: dec("25")},
				},
			},
			wantMsg: "income account is required",
		},
		{
			name: "PurchaseItemWithoutExpenseAccount",
			params: accounting.CreateInvoiceParams{
				OrganizationID: orgID,
				InvoiceType:    accounting.InvoiceTypePurchase,
				PartyName:      "Cooperativa Agrícola",
				Items: []accounting.CreateInvoiceItemParams{
					{ItemName: "Fertilizer", Quantity: dec("1"), Rate: dec("25"), IncomeAccountID: expense},
				},
			},
			wantMsg: "expense account is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Validation failures never reach the repository.
			repo := accounting.NewMockRepository(ctrl)
			svc := accounting.NewService(repo)

			inv, err := svc.CreateInvoice(context.Background(), tt.params)
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.Equal(t, accounting.KindValidation, accounting.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestService_CreateInvoice_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := accounting.NewMockRepository(ctrl)
	svc := accounting.NewService(repo)

	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	inv, err := svc.CreateInvoice(context.Background(), accounting.CreateInvoiceParams{
		OrganizationID: uuid.New(),
		CreatedBy:      uuid.New(),
		InvoiceType:    accounting.InvoiceTypeSales,
		PartyName:      "Quinta do Vale",
		InvoiceDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []accounting.CreateInvoiceItemParams{
			{
				ItemName:        "Olive oil 5L",
				Quantity:        dec("1"),
				Rate:            dec("25"),
				IncomeAccountID: uuidPtr(uuid.New()),
			},
		},
	})
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Contains(t, err.Error(), "creating invoice")
}

func TestService_GetInvoice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := accounting.NewMockRepository(ctrl)
	svc := accounting.NewService(repo)

	orgID := uuid.New()
	id := uuid.New()

	repo.EXPECT().GetInvoice(gomock.Any(), orgID, id).Return(nil, accounting.NotFoundf("invoice not found"))

	inv, err := svc.GetInvoice(context.Background(), orgID, id)
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Equal(t, accounting.KindNotFound, accounting.KindOf(err))
}
