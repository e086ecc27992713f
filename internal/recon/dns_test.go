package recon

import (
	"net"
	"strings"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// fakeDNS is a local UDP nameserver answering A and PTR queries from maps.
// Names listed in servfail get SERVFAIL; everything else unknown is NXDOMAIN.
type fakeDNS struct {
	a        map[string]string
	ptr      map[string]string
	servfail map[string]bool
}

func (f *fakeDNS) serveDNS(w dns.ResponseWriter, req *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(req)

	q := req.Question[0]
	name := strings.ToLower(q.Name)
	hdr := dns.RR_Header{Name: q.Name, Rrtype: q.Qtype, Class: dns.ClassINET, Ttl: 60}

	switch {
	case f.servfail[name]:
		m.Rcode = dns.RcodeServerFailure
	case q.Qtype == dns.TypeA && f.a[name] != "":
		m.Answer = append(m.Answer, &dns.A{Hdr: hdr, A: net.ParseIP(f.a[name])})
	case q.Qtype == dns.TypePTR && f.ptr[name] != "":
		m.Answer = append(m.Answer, &dns.PTR{Hdr: hdr, Ptr: dns.Fqdn(f.ptr[name])})
	default:
		m.Rcode = dns.RcodeNameError
	}

	_ = w.WriteMsg(m)
}

// startDNS runs f on 127.0.0.1 and returns the server address.
// a maps hostnames to IPv4, ptr maps IPv4 to hostnames.
func startDNS(t *testing.T, a, ptr map[string]string, servfail ...string) string {
	t.Helper()

	f := &fakeDNS{a: map[string]string{}, ptr: map[string]string{}, servfail: map[string]bool{}}
	for host, ip := range a {
		f.a[dns.Fqdn(strings.ToLower(host))] = ip
	}
	for ip, host := range ptr {
		arpa, err := dns.ReverseAddr(ip)
		require.NoError(t, err)
		f.ptr[arpa] = host
	}
	for _, host := range servfail {
		f.servfail[dns.Fqdn(strings.ToLower(host))] = true
	}

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc(".", f.serveDNS)

	started := make(chan struct{})
	server := &dns.Server{PacketConn: pc, Handler: mux, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = server.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = server.Shutdown() })

	return pc.LocalAddr().String()
}
