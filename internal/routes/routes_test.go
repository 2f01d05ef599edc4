package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/ratelimit"
	"github.com/BruksfildServices01/barber-manager/internal/testutil"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type app struct {
	t      *testing.T
	db     *gorm.DB
	r      *gin.Engine
	tokens *auth.TokenService
}

func newApp(t *testing.T, now func() time.Time) *app {
	t.Helper()

	db := testutil.NewDB(t)
	tokens, err := auth.NewTokenService("shop-secret", "barber-secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{
		BcryptCost:     bcrypt.MinCost,
		ReportTimezone: timezone.DefaultTimezone,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, Deps{
		Tokens:  tokens,
		Limiter: ratelimit.Noop{},
		Now:     now,
	})

	return &app{t: t, db: db, r: r, tokens: tokens}
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func (a *app) shopToken(id uint) string {
	a.t.Helper()
	token, _, err := a.tokens.Issue(id, auth.PrincipalBarbershop)
	require.NoError(a.t, err)
	return token
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var body httperr.HTTPError
	decodeInto(t, w, &body)
	return body
}

// ======================================================
// AUTH
// ======================================================

func TestHealth(t *testing.T) {
	a := newApp(t, nil)
	w := a.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_TokenOpensOnlyItsOwnGate(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")

	w := a.do(http.MethodPost, "/auth", "", gin.H{"login": "corte", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token         string `json:"token"`
		PrincipalData struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"principalData"`
	}
	decodeInto(t, w, &res)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, shop.ID, res.PrincipalData.ID)
	assert.NotContains(t, w.Body.String(), "s3cret")

	w = a.do(http.MethodPost, "/tokenVerify", res.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodPost, "/tokenVerifyBarber", res.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", errorOf(t, w).Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newApp(t, nil)
	testutil.CreateBarbershop(t, a.db, "corte", "s3cret")

	w := a.do(http.MethodPost, "/auth", "", gin.H{"login": "corte", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "credential_mismatch", errorOf(t, w).Code)
}

func TestGuard_MissingTokenNeverReachesHandler(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")

	w := a.do(http.MethodDelete, "/delete-barbershop", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_token", errorOf(t, w).Code)

	var count int64
	require.NoError(t, a.db.Model(&models.Barbershop{}).Where("id = ?", shop.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// ======================================================
// BARBERS
// ======================================================

func TestCreateBarber_LoginIsFirstNamePlusID(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	token := a.shopToken(shop.ID)

	w := a.do(http.MethodPost, "/create-barber", token, gin.H{
		"nome":      "Rafael Souza",
		"birthdate": "15/03/1990",
		"telefone":  "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var barber models.Barber
	decodeInto(t, w, &barber)
	assert.Equal(t, fmt.Sprintf("Rafael%d", barber.ID), barber.Login)

	w = a.do(http.MethodPost, "/create-barber", token, gin.H{"nome": "Rafael Souza"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Default password is the first name.
	w = a.do(http.MethodPost, "/auth-barber", "", gin.H{"login": barber.Login, "password": "Rafael"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	decodeInto(t, w, &res)

	w = a.do(http.MethodGet, "/barber/me", res.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rafael Souza")

	w = a.do(http.MethodGet, "/find-barbershops", res.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ======================================================
// CLIENTS
// ======================================================

func TestCreateClient_DuplicateNameAndPhone(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	token := a.shopToken(shop.ID)

	body := gin.H{"nome": "Ana", "telefone": "555-0000", "birthdate": "1990-03-15"}

	w := a.do(http.MethodPost, "/create-client", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/create-client", token, body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t,
		"There is already a customer with the same name and telephone number.",
		errorOf(t, w).Message,
	)

	w = a.do(http.MethodPost, "/create-client", token, gin.H{"nome": "Bia"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ======================================================
// CASHBOX
// ======================================================

func TestCashbox_CreateStampsLastVisitAndCountsToday(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	barber := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	token := a.shopToken(shop.ID)

	w := a.do(http.MethodPost, "/create-cashbox", token, gin.H{
		"valor":           50.5,
		"forma_pagamento": "pix",
		"produtos":        []gin.H{{"nome": "Corte", "valor": 50.5}},
		"barbeiroId":      barber.ID,
		"clienteId":       client.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var stored models.Client
	require.NoError(t, a.db.First(&stored, client.ID).Error)
	assert.NotNil(t, stored.LastVisitAt)

	w = a.do(http.MethodGet, "/total-cashbox-today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var today struct {
		TotalToday float64 `json:"totalToday"`
	}
	decodeInto(t, w, &today)
	assert.Equal(t, 50.5, today.TotalToday)

	var entry models.Transaction
	require.NoError(t, a.db.First(&entry).Error)

	w = a.do(http.MethodPut, "/update-cashbox", token, gin.H{"cashboxID": entry.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(http.MethodPut, "/update-cashbox", token, gin.H{"cashboxID": entry.ID, "valor": 60})
	assert.Equal(t, http.StatusOK, w.Code)

	var logs []models.AuditLog
	require.NoError(t, a.db.Where("barbershop_id = ?", shop.ID).Find(&logs).Error)
	assert.Len(t, logs, 2)
}

func TestCashbox_UnknownBarberIsNotFound(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	other := testutil.CreateBarbershop(t, a.db, "outro", "s3cret")
	foreign := testutil.CreateBarber(t, a.db, other.ID, "Leo", "leo1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)

	w := a.do(http.MethodPost, "/create-cashbox", a.shopToken(shop.ID), gin.H{
		"valor":           10,
		"forma_pagamento": "pix",
		"barbeiroId":      foreign.ID,
		"clienteId":       client.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ======================================================
// REPORTS
// ======================================================

func TestPeriodReports(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	rui := testutil.CreateBarber(t, a.db, shop.ID, "Max", "max1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	token := a.shopToken(shop.ID)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, loc)
	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 30, created, time.Date(2024, 1, 10, 10, 0, 0, 0, loc))
	testutil.CreateTransaction(t, a.db, shop.ID, rui.ID, client.ID, 20, created, time.Date(2024, 1, 31, 23, 30, 0, 0, loc))
	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 99, created, time.Date(2024, 2, 1, 0, 30, 0, 0, loc))

	period := gin.H{"dataInicial": "2024-01-01", "dataFinal": "2024-01-31"}

	w := a.do(http.MethodPost, "/get-cashbox-period", token, period)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var totals struct {
		Items   []models.Transaction `json:"items"`
		Sum     float64              `json:"sum"`
		Count   int64                `json:"count"`
		Average float64              `json:"average"`
	}
	decodeInto(t, w, &totals)
	assert.Len(t, totals.Items, 2)
	assert.Equal(t, 50.0, totals.Sum)
	assert.Equal(t, 25.0, totals.Average)

	w = a.do(http.MethodPost, "/get-cashbox-barber-period", token, period)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(http.MethodPost, "/get-cashbox-barber-period", token, gin.H{
		"dataInicial": "2024-01-01", "dataFinal": "2024-01-31", "barbeiroId": rui.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &totals)
	assert.Equal(t, 20.0, totals.Sum)

	w = a.do(http.MethodPost, "/get-amount-period", token, gin.H{
		"dataInicial": "2024-02-01", "dataFinal": "2024-01-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid_date_range", errorOf(t, w).Code)

	w = a.do(http.MethodPost, "/get-middle-ticket-period", token, gin.H{
		"dataInicial": "2023-01-01", "dataFinal": "2023-12-31",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"middleTicket":0,"count":0}`, w.Body.String())
}

func TestTopBarber_ScopedByToken(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := time.Date(2024, 3, 15, 15, 0, 0, 0, loc)
	a := newApp(t, func() time.Time { return now })

	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	rui := testutil.CreateBarber(t, a.db, shop.ID, "Max", "max1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	token := a.shopToken(shop.ID)

	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 10, now.Add(-3*time.Hour), time.Time{})
	testutil.CreateTransaction(t, a.db, shop.ID, rui.ID, client.ID, 10, now.Add(-2*time.Hour), time.Time{})
	testutil.CreateTransaction(t, a.db, shop.ID, rui.ID, client.ID, 10, now.Add(-1*time.Hour), time.Time{})
	// Yesterday does not count.
	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 10, now.AddDate(0, 0, -1), time.Time{})

	w := a.do(http.MethodGet, fmt.Sprintf("/find-top-barber/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var top struct {
		Barber *models.Barber `json:"barber"`
		Count  int            `json:"count"`
	}
	decodeInto(t, w, &top)
	require.NotNil(t, top.Barber)
	assert.Equal(t, rui.ID, top.Barber.ID)
	assert.Equal(t, 2, top.Count)

	w = a.do(http.MethodGet, fmt.Sprintf("/sales-per-day/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"salesPerDay":3}`, w.Body.String())

	w = a.do(http.MethodGet, fmt.Sprintf("/find-top-barber/%d", shop.ID+1), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, fmt.Sprintf("/find-top-barber/%d", shop.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ======================================================
// SCHEDULER
// ======================================================

func TestScheduler_SameBarberSameSlotConflicts(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	rui := testutil.CreateBarber(t, a.db, shop.ID, "Max", "max1", "x")
	ana := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	bia := testutil.CreateClient(t, a.db, shop.ID, "Bia", nil)
	token := a.shopToken(shop.ID)

	slot := "2024-05-01T10:00:00"

	w := a.do(http.MethodPost, "/create-scheduler", token, gin.H{"data": slot, "barbeiroId": leo.ID, "clienteId": ana.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/create-scheduler", token, gin.H{"data": slot, "barbeiroId": leo.ID, "clienteId": bia.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodPost, "/create-scheduler", token, gin.H{"data": slot, "barbeiroId": rui.ID, "clienteId": bia.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = a.do(http.MethodGet, "/find-schedules-barbershop?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	decodeInto(t, w, &list)
	assert.Equal(t, 2, list.Total)

	w = a.do(http.MethodGet, "/find-schedules-barbershop?month=2024-13", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ======================================================
// BARBERSHOP STATUS
// ======================================================

func TestCreateBarbershop_StatusFalseIsKept(t *testing.T) {
	a := newApp(t, nil)

	w := a.do(http.MethodPost, "/create-barbershop", "", gin.H{
		"name": "Fechada", "login": "fechada", "password": "p", "status": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Barbershop
	decodeInto(t, w, &created)
	assert.False(t, created.Status)

	var stored models.Barbershop
	require.NoError(t, a.db.First(&stored, created.ID).Error)
	assert.False(t, stored.Status)

	// Omitted status means active.
	w = a.do(http.MethodPost, "/create-barbershop", "", gin.H{
		"name": "Aberta", "login": "aberta", "password": "p",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeInto(t, w, &created)
	require.NoError(t, a.db.First(&stored, created.ID).Error)
	assert.True(t, stored.Status)
}

// ======================================================
// PASSWORD
// ======================================================

func TestAlterPassword(t *testing.T) {
	a := newApp(t, nil)
	testutil.CreateBarbershop(t, a.db, "corte", "s3cret")

	w := a.do(http.MethodPut, "/alter-password", "", gin.H{
		"login": "corte", "password": "wrong", "newPassword": "n3w",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "credential_mismatch", errorOf(t, w).Code)

	w = a.do(http.MethodPut, "/alter-password", "", gin.H{"login": "corte", "password": "s3cret"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(http.MethodPut, "/alter-password", "", gin.H{
		"login": "corte", "password": "s3cret", "newPassword": "n3w",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/auth", "", gin.H{"login": "corte", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/auth", "", gin.H{"login": "corte", "password": "n3w"})
	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// BARBER MUTATIONS
// ======================================================

func TestBarberMutations(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	other := testutil.CreateBarbershop(t, a.db, "outro", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	token := a.shopToken(shop.ID)

	w := a.do(http.MethodPut, "/alter-barber", token, gin.H{"nome": "Leonardo"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(http.MethodPut, "/alter-barber", a.shopToken(other.ID), gin.H{"id": leo.ID, "nome": "Leonardo"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPut, "/alter-barber", token, gin.H{"id": leo.ID, "nome": "Leonardo"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Barber
	require.NoError(t, a.db.First(&stored, leo.ID).Error)
	assert.Equal(t, "Leonardo", stored.Name)

	// The barber edits its own profile and password.
	barberToken, _, err := a.tokens.Issue(leo.ID, auth.PrincipalBarber)
	require.NoError(t, err)

	w = a.do(http.MethodPut, "/barber/me", token, gin.H{"telefone": "555-9999"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPut, "/barber/me", barberToken, gin.H{"telefone": "555-9999", "password": "novo"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, a.db.First(&stored, leo.ID).Error)
	assert.Equal(t, "555-9999", stored.Phone)

	w = a.do(http.MethodPost, "/auth-barber", "", gin.H{"login": "leo1", "password": "novo"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodDelete, "/delete-barber", token, gin.H{"id": leo.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Barber deleted."}`, w.Body.String())

	w = a.do(http.MethodDelete, "/delete-barber", token, gin.H{"id": leo.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/barber/me", barberToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ======================================================
// PRODUCTS
// ======================================================

type productBody struct {
	ID      uint    `json:"id"`
	Nome    string  `json:"nome"`
	Valor   float64 `json:"valor"`
	Estoque *int    `json:"estoque"`
	Servico bool    `json:"servico"`
}

func TestProducts_NullStockIsService(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	other := testutil.CreateBarbershop(t, a.db, "outro", "s3cret")
	token := a.shopToken(shop.ID)

	w := a.do(http.MethodPost, "/create-product", token, gin.H{"nome": "Corte", "valor": 30, "estoque": nil})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var corte productBody
	decodeInto(t, w, &corte)
	assert.True(t, corte.Servico)
	assert.Nil(t, corte.Estoque)

	w = a.do(http.MethodPost, "/create-product", token, gin.H{"nome": "Pomada", "valor": 25, "estoque": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pomada productBody
	decodeInto(t, w, &pomada)
	assert.False(t, pomada.Servico)
	require.NotNil(t, pomada.Estoque)
	assert.Equal(t, 5, *pomada.Estoque)

	w = a.do(http.MethodPost, "/create-product", token, gin.H{"nome": "Gel"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Turning a product into a service drops its stock.
	w = a.do(http.MethodPut, "/alter-product", token, gin.H{"id": pomada.ID, "servico": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeInto(t, w, &pomada)
	assert.True(t, pomada.Servico)
	assert.Nil(t, pomada.Estoque)

	var stored models.Product
	require.NoError(t, a.db.First(&stored, pomada.ID).Error)
	assert.True(t, stored.Service)
	assert.Nil(t, stored.Stock)

	w = a.do(http.MethodPut, "/alter-product", a.shopToken(other.ID), gin.H{"id": pomada.ID, "valor": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/find-products-barbershop", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data  []productBody `json:"data"`
		Total int           `json:"total"`
	}
	decodeInto(t, w, &list)
	assert.Equal(t, 2, list.Total)

	w = a.do(http.MethodDelete, "/delete-product", token, gin.H{"id": corte.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Product deleted."}`, w.Body.String())

	w = a.do(http.MethodDelete, "/delete-product", token, gin.H{"id": corte.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/find-products-barbershop", token, nil)
	decodeInto(t, w, &list)
	assert.Equal(t, 1, list.Total)
}

// ======================================================
// CLIENT REPORTS
// ======================================================

func TestClientReports(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := time.Date(2024, 4, 15, 15, 0, 0, 0, loc)
	a := newApp(t, func() time.Time { return now })

	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	token := a.shopToken(shop.ID)
	birth := func(y int, m time.Month, d int) *time.Time {
		b := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &b
	}
	ana := testutil.CreateClient(t, a.db, shop.ID, "Ana", birth(1990, time.April, 15))
	bia := testutil.CreateClient(t, a.db, shop.ID, "Bia", birth(1985, time.April, 2))
	testutil.CreateClient(t, a.db, shop.ID, "Caio", birth(1992, time.June, 15))

	require.NoError(t, a.db.Model(ana).UpdateColumn("created_at", time.Date(2024, 1, 10, 12, 0, 0, 0, loc).UTC()).Error)
	require.NoError(t, a.db.Model(bia).UpdateColumn("created_at", time.Date(2024, 2, 5, 12, 0, 0, 0, loc).UTC()).Error)

	type clientList struct {
		Data []struct {
			ID   uint   `json:"id"`
			Nome string `json:"nome"`
		} `json:"data"`
		Total int `json:"total"`
	}
	var list clientList

	w := a.do(http.MethodGet, fmt.Sprintf("/get-birthday-person-of-the-day/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeInto(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Ana", list.Data[0].Nome)

	w = a.do(http.MethodGet, fmt.Sprintf("/get-birthday-person-of-the-day/%d", shop.ID+1), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/birthdates-clients-for-month", token, gin.H{"date": "2024-04-01"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeInto(t, w, &list)
	assert.Equal(t, 2, list.Total)

	w = a.do(http.MethodPost, "/birthdates-clients-for-month", token, gin.H{"date": "2024-06-20"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Caio", list.Data[0].Nome)

	period := gin.H{"dataInicial": "2024-01-01", "dataFinal": "2024-01-31"}
	for _, path := range []string{"/get-clients-registered-period", "/get-cliente-registered-period/"} {
		w = a.do(http.MethodPost, path, token, period)
		require.Equal(t, http.StatusOK, w.Code, path)
		decodeInto(t, w, &list)
		require.Equal(t, 1, list.Total, path)
		assert.Equal(t, ana.ID, list.Data[0].ID, path)
	}
}

func TestClientsPerBarberAndMiddleTicket(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := time.Date(2024, 4, 15, 15, 0, 0, 0, loc)
	a := newApp(t, func() time.Time { return now })

	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	rui := testutil.CreateBarber(t, a.db, shop.ID, "Rui", "rui1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	token := a.shopToken(shop.ID)

	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 30, now.Add(-3*time.Hour), time.Time{})
	testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 20, now.Add(-2*time.Hour), time.Time{})
	testutil.CreateTransaction(t, a.db, shop.ID, rui.ID, client.ID, 10, now.Add(-1*time.Hour), time.Time{})

	w := a.do(http.MethodGet, fmt.Sprintf("/get-middle-ticket/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"middleTicket":20,"count":3}`, w.Body.String())

	w = a.do(http.MethodGet, fmt.Sprintf("/clients-per-barber/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var perBarber struct {
		Rows []struct {
			BarberID     uint   `json:"barberId"`
			BarberName   string `json:"barberName"`
			ClientsCount int    `json:"clientsCount"`
		} `json:"rows"`
		Chart [][]any `json:"chart"`
	}
	decodeInto(t, w, &perBarber)
	require.Len(t, perBarber.Rows, 2)
	assert.Equal(t, "Leo", perBarber.Rows[0].BarberName)
	assert.Equal(t, 2, perBarber.Rows[0].ClientsCount)
	assert.Len(t, perBarber.Chart, 3)

	// Deleted barbers drop out of the tally and of the top.
	w = a.do(http.MethodDelete, "/delete-barber", token, gin.H{"id": leo.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, fmt.Sprintf("/clients-per-barber/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &perBarber)
	require.Len(t, perBarber.Rows, 1)
	assert.Equal(t, rui.ID, perBarber.Rows[0].BarberID)

	w = a.do(http.MethodGet, fmt.Sprintf("/find-top-barber/%d", shop.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var top struct {
		Barber *models.Barber `json:"barber"`
		Count  int            `json:"count"`
	}
	decodeInto(t, w, &top)
	require.NotNil(t, top.Barber)
	assert.Equal(t, rui.ID, top.Barber.ID)
	assert.Equal(t, 1, top.Count)
}

// ======================================================
// CASHBOX DELETE
// ======================================================

func TestDeleteCashbox_RecordsAudit(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	other := testutil.CreateBarbershop(t, a.db, "outro", "s3cret")
	leo := testutil.CreateBarber(t, a.db, shop.ID, "Leo", "leo1", "x")
	client := testutil.CreateClient(t, a.db, shop.ID, "Ana", nil)
	token := a.shopToken(shop.ID)

	entry := testutil.CreateTransaction(t, a.db, shop.ID, leo.ID, client.ID, 40, time.Now(), time.Time{})

	w := a.do(http.MethodDelete, "/delete-cashbox", a.shopToken(other.ID), gin.H{"id": entry.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, "/delete-cashbox", token, gin.H{"id": entry.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Cashbox entry deleted."}`, w.Body.String())

	w = a.do(http.MethodDelete, "/delete-cashbox", token, gin.H{"id": entry.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/audit-logs?action=cashbox_deleted", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Total int64             `json:"total"`
		Logs  []models.AuditLog `json:"logs"`
	}
	decodeInto(t, w, &res)
	require.Equal(t, int64(1), res.Total)
	require.NotNil(t, res.Logs[0].EntityID)
	assert.Equal(t, entry.ID, *res.Logs[0].EntityID)
}

// ======================================================
// AUDIT LOGS
// ======================================================

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func TestAuditLogs_Filters(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	other := testutil.CreateBarbershop(t, a.db, "outro", "s3cret")
	token := a.shopToken(shop.ID)

	rows := []models.AuditLog{
		{BarbershopID: shop.ID, Action: "cashbox_created", Entity: "cashbox", CreatedAt: time.Date(2024, 4, 10, 9, 0, 0, 0, loc).UTC()},
		{BarbershopID: shop.ID, Action: "cashbox_deleted", Entity: "cashbox", CreatedAt: time.Date(2024, 4, 10, 18, 0, 0, 0, loc).UTC()},
		{BarbershopID: shop.ID, Action: "scheduler_created", Entity: "scheduler", CreatedAt: time.Date(2024, 4, 11, 10, 0, 0, 0, loc).UTC()},
		{BarbershopID: other.ID, Action: "cashbox_created", Entity: "cashbox", CreatedAt: time.Date(2024, 4, 10, 9, 0, 0, 0, loc).UTC()},
	}
	require.NoError(t, a.db.Create(&rows).Error)

	list := func(query string) auditPage {
		t.Helper()
		w := a.do(http.MethodGet, "/audit-logs"+query, token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var p auditPage
		decodeInto(t, w, &p)
		return p
	}

	all := list("")
	assert.Equal(t, int64(3), all.Total)
	require.Len(t, all.Logs, 3)
	assert.Equal(t, "scheduler_created", all.Logs[0].Action)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 50, all.Limit)

	assert.Equal(t, int64(1), list("?action=cashbox_created").Total)
	assert.Equal(t, int64(2), list("?entity=cashbox").Total)
	assert.Equal(t, int64(1), list("?from=2024-04-11").Total)

	// A date-only bound covers the whole day.
	assert.Equal(t, int64(2), list("?to=2024-04-10").Total)
	// A full timestamp bound is taken as is.
	noon := list("?to=2024-04-10T12:00:00")
	require.Equal(t, int64(1), noon.Total)
	assert.Equal(t, "cashbox_created", noon.Logs[0].Action)
	assert.Equal(t, int64(2), list("?from=2024-04-10T12:00:00&to=2024-04-11").Total)

	w := a.do(http.MethodGet, "/audit-logs?to=yesterday", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuditLogs_Paging(t *testing.T) {
	a := newApp(t, nil)
	shop := testutil.CreateBarbershop(t, a.db, "corte", "s3cret")
	token := a.shopToken(shop.ID)

	base := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, a.db.Create(&models.AuditLog{
			BarbershopID: shop.ID,
			Action:       fmt.Sprintf("action_%d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	var p auditPage

	w := a.do(http.MethodGet, "/audit-logs?limit=500&page=0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &p)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Len(t, p.Logs, 3)

	w = a.do(http.MethodGet, "/audit-logs?limit=1&page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &p)
	assert.Equal(t, int64(3), p.Total)
	require.Len(t, p.Logs, 1)
	assert.Equal(t, "action_1", p.Logs[0].Action)

	w = a.do(http.MethodGet, "/audit-logs?limit=1&page=9", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &p)
	assert.Empty(t, p.Logs)

	w = a.do(http.MethodGet, "/audit-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
