package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/freshcart/freshcart/services/auth/flow"
	"github.com/freshcart/freshcart/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoginHandlerTest(t *testing.T) (*LoginHandler, *flow.Store, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authUC := mocks.NewMockAuthUC(ctrl)
	machine := flow.NewMachine(authUC, &models.Config{
		Auth: models.AuthConfig{ResendCooldownSeconds: 60},
	})
	store := flow.NewStore(10 * time.Minute)
	t.Cleanup(store.Close)

	return NewLoginHandler(machine, store), store, authUC
}

func doFlowJSON(e *echo.Echo, method, target, flowID, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if flowID != "" {
		c.SetParamNames("id")
		c.SetParamValues(flowID)
	}
	return rec, c
}

func openFlowID(t *testing.T, handler *LoginHandler, e *echo.Echo) string {
	t.Helper()

	rec, c := doFlowJSON(e, http.MethodPost, "/auth/login", "", "")
	require.NoError(t, handler.OpenFlow(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp flowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, flow.StatePhoneEntry, resp.State)

	return resp.ID
}

func TestOpenFlow(t *testing.T) {
	handler, store, _ := setupLoginHandlerTest(t)
	e := echo.New()

	id := openFlowID(t, handler, e)

	assert.NotEmpty(t, id)
	assert.Equal(t, 1, store.Len())
}

func TestSubmitPhoneEndpoint(t *testing.T) {
	t.Run("Advances to code sent", func(t *testing.T) {
		handler, _, authUC := setupLoginHandlerTest(t)
		e := echo.New()
		id := openFlowID(t, handler, e)

		authUC.EXPECT().
			SendCode(gomock.Any(), gomock.Any()).
			Return(&models.SendCodeResponse{Channel: "sms", ServiceSID: "VAxxxx"}, nil)

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/phone", id,
			`{"phone":"+15551234567","role":"customer"}`)
		require.NoError(t, handler.SubmitPhone(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp flowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, flow.StateCodeSent, resp.State)
		assert.Equal(t, "sms", resp.Channel)
		assert.Greater(t, resp.ResendInSeconds, 0)
	})

	t.Run("Unknown flow returns 404", func(t *testing.T) {
		handler, _, _ := setupLoginHandlerTest(t)
		e := echo.New()

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/x/phone",
			"3b54bd33-1d37-4e33-a2b1-0123456789ab", `{"phone":"+15551234567"}`)
		require.NoError(t, handler.SubmitPhone(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad flow ID returns 400", func(t *testing.T) {
		handler, _, _ := setupLoginHandlerTest(t)
		e := echo.New()

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/x/phone", "not-a-uuid",
			`{"phone":"+15551234567"}`)
		require.NoError(t, handler.SubmitPhone(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitCodeEndpoint(t *testing.T) {
	submitPhone := func(t *testing.T, handler *LoginHandler, e *echo.Echo, authUC *mocks.MockAuthUC, id string) {
		authUC.EXPECT().
			SendCode(gomock.Any(), gomock.Any()).
			Return(&models.SendCodeResponse{Channel: "sms", ServiceSID: "VAxxxx"}, nil)
		_, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/phone", id,
			`{"phone":"+15551234567","role":"customer"}`)
		require.NoError(t, handler.SubmitPhone(c))
	}

	t.Run("Resolves with session", func(t *testing.T) {
		handler, _, authUC := setupLoginHandlerTest(t)
		e := echo.New()
		id := openFlowID(t, handler, e)
		submitPhone(t, handler, e, authUC, id)

		authUC.EXPECT().
			CheckCode(gomock.Any(), gomock.Any()).
			Return(&models.CheckCodeResponse{
				Session: &models.AuthSession{Token: "jwt", Role: "customer"},
			}, nil)

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/code", id,
			`{"code":"123456"}`)
		require.NoError(t, handler.SubmitCode(c))

		var resp flowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, flow.StateResolved, resp.State)
		require.NotNil(t, resp.Session)
		assert.Equal(t, "jwt", resp.Session.Token)
	})

	t.Run("Role mismatch stays in code sent", func(t *testing.T) {
		handler, store, authUC := setupLoginHandlerTest(t)
		e := echo.New()
		id := openFlowID(t, handler, e)
		submitPhone(t, handler, e, authUC, id)

		authUC.EXPECT().
			CheckCode(gomock.Any(), gomock.Any()).
			Return(nil, auth.ErrRoleMismatch)

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/code", id,
			`{"code":"123456"}`)
		require.NoError(t, handler.SubmitCode(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Code before phone is an invalid transition", func(t *testing.T) {
		handler, _, _ := setupLoginHandlerTest(t)
		e := echo.New()
		id := openFlowID(t, handler, e)

		rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/code", id,
			`{"code":"123456"}`)
		require.NoError(t, handler.SubmitCode(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestResendEndpoint(t *testing.T) {
	handler, _, authUC := setupLoginHandlerTest(t)
	e := echo.New()
	id := openFlowID(t, handler, e)

	authUC.EXPECT().
		SendCode(gomock.Any(), gomock.Any()).
		Return(&models.SendCodeResponse{Channel: "sms", ServiceSID: "VAxxxx"}, nil)
	_, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/phone", id,
		`{"phone":"+15551234567"}`)
	require.NoError(t, handler.SubmitPhone(c))

	// immediately resending is inside the cooldown window
	rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/resend", id, "")
	require.NoError(t, handler.Resend(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestResetAndCancelEndpoints(t *testing.T) {
	handler, store, authUC := setupLoginHandlerTest(t)
	e := echo.New()
	id := openFlowID(t, handler, e)

	authUC.EXPECT().
		SendCode(gomock.Any(), gomock.Any()).
		Return(&models.SendCodeResponse{Channel: "sms", ServiceSID: "VAxxxx"}, nil)
	_, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/phone", id,
		`{"phone":"+15551234567"}`)
	require.NoError(t, handler.SubmitPhone(c))

	// reset backs out to phone entry but keeps the flow alive
	rec, c := doFlowJSON(e, http.MethodPost, "/auth/login/"+id+"/cancel", id, "")
	require.NoError(t, handler.Reset(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp flowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, flow.StatePhoneEntry, resp.State)
	assert.Empty(t, resp.Phone)
	assert.Equal(t, 1, store.Len())

	// delete discards it entirely
	rec, c = doFlowJSON(e, http.MethodDelete, "/auth/login/"+id, id, "")
	require.NoError(t, handler.CancelFlow(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, store.Len())
}
