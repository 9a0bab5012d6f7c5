package titles

import (
	"reflect"
	"testing"
)

func TestExtractFeatured(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		wantTitle   string
		wantArtists []string
	}{
		{
			name:      "no credit",
			title:     "Yesterday",
			wantTitle: "Yesterday",
		},
		{
			name:        "feat with parenthesis",
			title:       "Empire State of Mind (feat. Alicia Keys)",
			wantTitle:   "Empire State of Mind",
			wantArtists: []string{"Alicia Keys"},
		},
		{
			name:        "ft without parenthesis",
			title:       "Crazy in Love ft. Jay-Z",
			wantTitle:   "Crazy in Love",
			wantArtists: []string{"Jay-Z"},
		},
		{
			name:        "comma separated credits",
			title:       "Song (feat. First Artist, Second Artist)",
			wantTitle:   "Song",
			wantArtists: []string{"First Artist", "Second Artist"},
		},
		{
			name:        "ampersand separated credits",
			title:       "Song (feat. First Artist & Second Artist)",
			wantTitle:   "Song",
			wantArtists: []string{"First Artist", "Second Artist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTitle, gotArtists := ExtractFeatured(tt.title)
			if gotTitle != tt.wantTitle {
				t.Errorf("title = %q, want %q", gotTitle, tt.wantTitle)
			}
			if !reflect.DeepEqual(gotArtists, tt.wantArtists) {
				t.Errorf("artists = %v, want %v", gotArtists, tt.wantArtists)
			}
		})
	}
}

func TestParseVideoTitle(t *testing.T) {
	tests := []struct {
		name        string
		videoTitle  string
		wantArtists []string
		wantTitle   string
		wantOK      bool
	}{
		{
			name:        "plain artist dash title",
			videoTitle:  "The Beatles - Yesterday",
			wantArtists: []string{"The Beatles"},
			wantTitle:   "Yesterday",
			wantOK:      true,
		},
		{
			name:        "featured credit on the left",
			videoTitle:  "DJ Khaled ft. Rihanna - Wild Thoughts",
			wantArtists: []string{"DJ Khaled", "Rihanna"},
			wantTitle:   "Wild Thoughts",
			wantOK:      true,
		},
		{
			name:        "featured credit on the right",
			videoTitle:  "Jay-Z - Empire State of Mind (feat. Alicia Keys)",
			wantArtists: []string{"Jay-Z", "Alicia Keys"},
			wantTitle:   "Empire State of Mind",
			wantOK:      true,
		},
		{
			name:       "no separator",
			videoTitle: "Just A Title",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotArtists, gotTitle, ok := ParseVideoTitle(tt.videoTitle)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if gotTitle != tt.wantTitle {
				t.Errorf("title = %q, want %q", gotTitle, tt.wantTitle)
			}
			if !reflect.DeepEqual(gotArtists, tt.wantArtists) {
				t.Errorf("artists = %v, want %v", gotArtists, tt.wantArtists)
			}
		})
	}
}

func TestMergeArtists(t *testing.T) {
	got := MergeArtists([]string{"Jay-Z", "Alicia Keys"}, []string{"Alicia Keys", "Extra"})
	want := []string{"Jay-Z", "Alicia Keys", "Extra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeArtists() = %v, want %v", got, want)
	}
}
