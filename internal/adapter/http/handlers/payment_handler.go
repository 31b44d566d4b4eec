package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "analysis_billing/internal/adapter/http/dto/request"
	response "analysis_billing/internal/adapter/http/dto/response"
	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment initiation routes (card and Pix).

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCardPayment godoc
// @Summary      Processar pagamento com cartão
// @Description  Cria um pagamento de cartão no Mercado Pago e libera a análise premium quando aprovado
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.CardPaymentRequest  true  "Dados do pagamento"
// @Success      200      {object}  response.CardPaymentResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Router       /payments/card [post]
func (h *PaymentHandler) CreateCardPayment(c *gin.Context) {
	var req request.CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Corpo da requisição inválido."})
		return
	}

	result, err := h.usecase.CreateCardPayment(c.Request.Context(), req)
	if err != nil {
		status, body := mapPaymentError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, response.CardPaymentResponse{
		Success:   result.Approved,
		Status:    result.Status,
		Detail:    result.StatusDetail,
		PaymentID: result.PaymentID,
		Message:   result.Message,
	})
}

// CreatePixPayment godoc
// @Summary      Criar pagamento Pix
// @Description  Cria um pagamento Pix no Mercado Pago e retorna o QR Code; a confirmação chega depois via webhook
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PixPaymentRequest  true  "Dados do pagamento"
// @Success      200      {object}  response.PixPaymentResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Router       /payments/pix [post]
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.PixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Corpo da requisição inválido."})
		return
	}

	result, err := h.usecase.CreatePixPayment(c.Request.Context(), req)
	if err != nil {
		status, body := mapPaymentError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, response.PixPaymentResponse{
		Success:      true,
		Status:       result.Status,
		Detail:       result.StatusDetail,
		PaymentID:    result.PaymentID,
		QRCode:       result.QRCode,
		QRCodeBase64: result.QRCodeBase64,
		ExpiresAt:    result.ExpiresAt,
	})
}

// GetPaymentStatus godoc
// @Summary      Consultar status do pagamento
// @Description  Retorna os campos de pagamento da análise; usado pelo cliente enquanto aguarda a confirmação do Pix
// @Tags         payments
// @Produce      json
// @Param        analysis_id  path      string  true  "ID da análise"
// @Success      200  {object}  response.PaymentStatusResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /payments/status/{analysis_id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	analysisID := c.Param("analysis_id")

	rec, err := h.usecase.GetPaymentStatus(c.Request.Context(), analysisID)
	if err != nil {
		if errors.Is(err, usecase.ErrAnalysisRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Análise não encontrada."})
			return
		}
		logger.Error("payment status lookup failed",
			zap.String("analysis_id", analysisID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Erro interno do servidor."})
		return
	}

	c.JSON(http.StatusOK, response.FromAnalysisRecord(rec))
}

// mapPaymentError translates the usecase error taxonomy into the
// client-facing contract. Gateway errors keep the gateway's own diagnosis
// in the body and map to 502 when the gateway itself failed, 400 when it
// rejected the request.
func mapPaymentError(err error) (int, response.ErrorResponse) {
	var validation *usecase.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, response.ErrorResponse{
			Error:         "Dados obrigatórios ausentes: " + strings.Join(validation.Fields, ", "),
			MissingFields: validation.Fields,
		}
	}

	if errors.Is(err, entities.ErrGatewayNotConfigured) {
		return http.StatusInternalServerError, response.ErrorResponse{
			Error: "Access token do Mercado Pago não configurado. Defina a variável de ambiente MERCADOPAGO_ACCESS_TOKEN.",
		}
	}

	var gw *entities.GatewayError
	if errors.As(err, &gw) {
		status := http.StatusBadRequest
		if gw.IsServerError() {
			status = http.StatusBadGateway
		}
		return status, response.ErrorResponse{
			Error:          gw.Message,
			MPStatus:       gw.Status,
			MPStatusDetail: gw.StatusDetail,
		}
	}

	if errors.Is(err, usecase.ErrMissingPixQRCode) {
		return http.StatusBadGateway, response.ErrorResponse{
			Error: "Pagamento Pix criado, mas o Mercado Pago não retornou os dados do QR Code.",
		}
	}

	return http.StatusInternalServerError, response.ErrorResponse{Error: "Erro interno do servidor."}
}
