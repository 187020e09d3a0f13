package api

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *Server
	baseURL string
}

func (s *ClientTestSuite) SetupSuite() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	s.server = NewServer(&ServerConfig{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port})
	s.baseURL = fmt.Sprintf("http://%s", ln.Addr().String())
	go func() {
		_ = s.server.App.Listener(ln)
	}()
}

func (s *ClientTestSuite) TearDownSuite() {
	s.Require().NoError(s.server.Shutdown())
}

func (s *ClientTestSuite) newClient(compress bool) *Client {
	client, err := NewClient(&ClientConfig{
		BaseURL:         s.baseURL,
		Timeout:         5 * time.Second,
		ZstdCompression: compress,
	})
	s.Require().NoError(err)
	s.T().Cleanup(client.Close)
	return client
}

func (s *ClientTestSuite) TestHealth() {
	status, err := s.newClient(false).Health(context.Background())
	s.Require().NoError(err)
	s.Equal("ok", status)
}

func (s *ClientTestSuite) TestEvaluate() {
	for _, compress := range []bool{false, true} {
		s.Run(fmt.Sprintf("zstd=%t", compress), func() {
			out, err := s.newClient(compress).Evaluate(context.Background(), CurveRequest{
				Scores: []float64{0.9, 0.8, 0.7, 0.6},
				Labels: []string{"1", "0", "1", "0"},
				Points: true,
			})
			s.Require().NoError(err)
			s.Equal(int64(2), out.TotalPositives)
			s.InDelta(0.75, float64(out.ROCArea), 1e-12)
			s.Len(out.PRPoints, 5)
		})
	}
}

func (s *ClientTestSuite) TestEvaluateReturnsServerError() {
	_, err := s.newClient(true).Evaluate(context.Background(), CurveRequest{
		Scores: []float64{0.9},
		Labels: []string{"1", "0"},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "status 400")
}

func (s *ClientTestSuite) TestNewClientValidation() {
	_, err := NewClient(nil)
	s.Error(err)
	_, err = NewClient(&ClientConfig{})
	s.Error(err)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
