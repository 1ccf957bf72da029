package cert

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"github.com/bokysan/artr/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/youmark/pkcs8"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ServerConfig is the certificate configuration of a server. If neither a certificate nor a private
// key is given, the server runs without TLS.
type ServerConfig struct {
	CaCertificate             string  `yaml:"cacertificate"             long:"ca-certificate"               env:"ARTR_CA_CERTIFICATE"               description:"CA certificate(s) used to verify client certificates"`
	CaCertificateFile         string  `yaml:"cacertificatefile"         long:"ca-certificate-file"          env:"ARTR_CA_CERTIFICATE_FILE"          description:"File with CA certificate(s)"`
	Certificate               string  `yaml:"certificate"               long:"certificate"                  env:"ARTR_CERTIFICATE"                  description:"Server certificate"`
	CertificateFile           string  `yaml:"certificatefile"           long:"certificate-file"             env:"ARTR_CERTIFICATE_FILE"             description:"File with the server certificate"`
	PrivateKey                string  `yaml:"privatekey"                long:"private-key"                  env:"ARTR_PRIVATE_KEY"                  description:"Server private key"`
	PrivateKeyFile            string  `yaml:"privatekeyfile"            long:"private-key-file"             env:"ARTR_PRIVATE_KEY_FILE"             description:"File with the server private key"`
	PrivateKeyPassword        *string `yaml:"privatekeypassword"        long:"private-key-password"         env:"ARTR_PRIVATE_KEY_PASSWORD"         description:"Decryption password"`
	PrivateKeyPasswordProgram string  `yaml:"privatekeypasswordprogram" long:"private-key-password-program" env:"ARTR_PRIVATE_KEY_PASSWORD_PROGRAM" description:"Program to run to get the decryption key"`
	RequireClientCert         bool    `yaml:"requireclientcert"         long:"require-client-cert"          env:"ARTR_REQUIRE_CLIENT_CERT"          description:"If set, the client must authenticate with its certificate."`
}

// Enabled returns true if TLS has been configured
func (m *ServerConfig) Enabled() bool {
	return m.Certificate != "" || m.CertificateFile != "" || m.PrivateKey != "" || m.PrivateKeyFile != ""
}

// readPem returns the inline value if set, otherwise the contents of the file
func readPem(inline, file, what string) ([]byte, error) {
	if file != "" {
		block, err := ioutil.ReadFile(findFile(file))
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read %s file: %s", what, file)
		}
		return block, nil
	} else if inline != "" {
		return []byte(strings.TrimSpace(inline)), nil
	}
	return nil, nil
}

func (m *ServerConfig) GetPrivateKey() ([]byte, error) {
	privateKeyPemBlock, err := readPem(m.PrivateKey, m.PrivateKeyFile, "private key")
	if err != nil || len(privateKeyPemBlock) == 0 {
		return privateKeyPemBlock, err
	}

	block, _ := pem.Decode(privateKeyPemBlock)
	if block == nil {
		return nil, errors.Errorf("Private key is not PEM encoded")
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" {
		password, err := m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed getting the key password")
		}

		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not decrypt private key!")
		}

		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			return nil, errors.Wrapf(err, "Don't know how to handle %T", key)
		}
		return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
	}

	return privateKeyPemBlock, nil
}

func (m *ServerConfig) GetPrivateKeyPassword() ([]byte, error) {
	if m.PrivateKeyPassword != nil {
		return []byte(*m.PrivateKeyPassword), nil
	} else if m.PrivateKeyPasswordProgram != "" {
		cmd := exec.Command("sh", "-c", m.PrivateKeyPasswordProgram)
		out := &bytes.Buffer{}
		cmd.Stdout = out
		if err := cmd.Run(); err != nil {
			return nil, errors.Wrapf(err, "Failed executing %s", m.PrivateKeyPasswordProgram)
		}
		return bytes.TrimSpace(out.Bytes()), nil
	}
	return nil, errors.Errorf("Private key is encrypted and no password or password program defined!")
}

// GetTlsConfig creates the TLS configuration for the server. It returns nil if TLS is not enabled.
func (m *ServerConfig) GetTlsConfig() (*tls.Config, error) {
	if !m.Enabled() {
		return nil, nil
	}
	log.Debugf("ServerConfig.GetTlsConfig(), RequireClientCert=%v", m.RequireClientCert)

	certPemBlock, err := readPem(m.Certificate, m.CertificateFile, "certificate")
	if err != nil {
		return nil, err
	}
	privateKeyPemBlock, err := m.GetPrivateKey()
	if err != nil {
		return nil, err
	}

	crt, err := tls.X509KeyPair(certPemBlock, privateKeyPemBlock)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create a X509 key pair from given data!")
	}

	conf := &tls.Config{
		Certificates: []tls.Certificate{crt},
	}

	caCert, err := readPem(m.CaCertificate, m.CaCertificateFile, "ca certificate")
	if err != nil {
		return nil, errors.Wrapf(err, "Could not load CA certificates")
	}
	if caCert != nil {
		caCertPool := x509.NewCertPool()
		if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
			return nil, errors.Errorf("Could not parse CA certificates")
		}
		conf.ClientCAs = caCertPool
	}

	if m.RequireClientCert {
		conf.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return conf, nil
}

// findFile will try to locate the file based on relative path of the configuration location and,
// failing that, return the provided location as is
func findFile(name string) string {
	if args.General.ConfigurationFilePath != "" {
		file := filepath.Join(filepath.Dir(args.General.ConfigurationFilePath), name)
		if _, err := os.Stat(file); !os.IsNotExist(err) {
			return file
		}
	}

	return name
}
