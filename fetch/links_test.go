package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"
)

const indexHTML = `<html><body>
<a href="/downloads/05409.pdf">District 54</a>
<a href="05509.pdf">District 55</a>
<a href="https://other.example.com/05609.PDF">District 56</a>
<a href="/downloads/05409.pdf">Duplicate</a>
<a href="/about.html">About</a>
<a>no href</a>
</body></html>`

func TestParseLinks(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(indexHTML))
	if err != nil {
		t.Fatal(err)
	}
	base, _ := url.Parse("https://bureau.example.com/census/index.html")

	got := ParseLinks(doc, base)
	want := []string{
		"https://bureau.example.com/downloads/05409.pdf",
		"https://bureau.example.com/census/05509.pdf",
		"https://other.example.com/05609.PDF",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDiscoverLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a href="x.pdf">x</a>`))
	}))
	defer srv.Close()

	c := NewClient(Options{Delay: time.Millisecond})
	links, err := c.DiscoverLinks(context.Background(), srv.URL+"/index.html")
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 1 || links[0] != srv.URL+"/x.pdf" {
		t.Errorf("unexpected links: %v", links)
	}
}

func TestParseManifest(t *testing.T) {
	csv := "code,name,province,table\n054,LAHORE,PUNJAB,09\n055,SHEIKHUPURA,PUNJAB,09\n"
	entries, err := ParseManifest(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Code != "054" || entries[0].Name != "LAHORE" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if got := entries[0].FileName("{code}{table}.pdf"); got != "05409.pdf" {
		t.Errorf("Expected 05409.pdf, got %q", got)
	}
}

func TestManifestURLs(t *testing.T) {
	entries := []ManifestEntry{{Code: "054", Table: "09"}}
	got := ManifestURLs("https://bureau.example.com/downloads/", "{code}{table}.pdf", entries)
	want := []string{"https://bureau.example.com/downloads/05409.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
