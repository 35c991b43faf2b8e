//go:build gomock || generate

package tlsinfo

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package tlsinfo -self_package github.com/quic-go/tlsinfo -destination mock_certificate_parser_test.go github.com/quic-go/tlsinfo CertificateParser"
