package payout_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"payout-gateway/domain/entities/payout"
	"payout-gateway/domain/repositories"
	errs "payout-gateway/errors"
	"payout-gateway/utils/configs"
	"payout-gateway/utils/helpers"
)

const (
	pathTransfer = "payout"
	pathQuery    = "inquery-trans"
)

// typeHeader is sent JSON-encoded in the "type" header of every call.
type typeHeader struct {
	Channel     string `json:"Channel"`
	PartnerCode string `json:"Partnercode"`
}

type repoImpl struct {
	Uri        string
	ApiKey     string
	TypeHeader string
	Client     *http.Client
	Logger     *zap.Logger
}

var _ repositories.PayoutRepository = (*repoImpl)(nil)

func (r repoImpl) Transfer(ctx context.Context, body payout.TransferReqInner) (response payout.TransferResInner, err error) {
	err = r.httpRequest(ctx, struct {
		Path     string
		Method   string
		Body     interface{}
		Response interface{}
	}{
		Path:     pathTransfer,
		Method:   http.MethodPost,
		Body:     body,
		Response: &response,
	})
	return response, err
}

func (r repoImpl) Query(ctx context.Context, body payout.QueryReq) (response payout.QueryResInner, err error) {
	err = r.httpRequest(ctx, struct {
		Path     string
		Method   string
		Body     interface{}
		Response interface{}
	}{
		Path:     pathQuery,
		Method:   http.MethodPost,
		Body:     body,
		Response: &response,
	})
	return response, err
}

func (r repoImpl) httpRequest(ctx context.Context, request struct {
	Path     string
	Method   string
	Body     interface{}
	Response interface{}
}) error {
	uri := r.Uri + request.Path
	requestID := helpers.GetUUId()
	logs := r.Logger.With(zap.String("uri", uri), zap.String("request_id", requestID))

	jsonrequest, err := json.Marshal(request.Body)
	if err != nil {
		return &errs.TransportError{Op: "encode " + request.Path, Err: err}
	}
	logs.Info("payout_request", zap.String("request", string(jsonrequest)))

	req, err := http.NewRequestWithContext(ctx, request.Method, uri, bytes.NewReader(jsonrequest))
	if err != nil {
		return &errs.TransportError{Op: "build " + request.Path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", r.ApiKey)
	req.Header.Set("type", r.TypeHeader)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := r.Client.Do(req)
	if err != nil {
		return &errs.TransportError{Op: "send " + request.Path, Err: err}
	}
	defer resp.Body.Close()

	responseByte, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.TransportError{Op: "read " + request.Path, Err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		logs.Error("PAYOUT GATEWAY SERVER ERROR", zap.Int("http_status", resp.StatusCode), zap.String("response", string(responseByte)))
		return &errs.TransportError{Op: request.Path, Err: fmt.Errorf("payout gateway server error: %s", resp.Status)}
	}

	logs.Info("http_request_data",
		zap.String("request", string(jsonrequest)),
		zap.Int("http_status", resp.StatusCode),
		zap.String("response", string(responseByte)),
	)

	if err = json.Unmarshal(responseByte, request.Response); err != nil {
		logs.With(zap.Error(err)).Error("can not unmarshal response")
		return &errs.TransportError{Op: "decode " + request.Path, Err: err}
	}
	return nil
}

// NewRepoImpl builds the HTTP gateway client from config. The type header
// is encoded once since channel and partner code never change per client.
func NewRepoImpl(config *configs.Config, logger *zap.Logger) (*repoImpl, error) {
	header, err := json.Marshal(typeHeader{Channel: config.Channel, PartnerCode: config.PartnerCode})
	if err != nil {
		return nil, err
	}
	uri := config.BaseURL
	if !strings.HasSuffix(uri, "/") {
		uri += "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &repoImpl{
		Uri:        uri,
		ApiKey:     config.APIKey,
		TypeHeader: string(header),
		Client:     &http.Client{Timeout: config.Timeout()},
		Logger:     logger,
	}, nil
}
