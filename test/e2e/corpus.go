// Package e2e provides end-to-end tests driving a full exploration session.
package e2e

import (
	"fmt"
	"strings"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/session"
)

// topic is one subject in the corpus: a document about it plus a follow-up query.
type topic struct {
	title    string
	docType  artifact.DocType
	source   string
	phrase   string
	content  string
	followUp string
}

// Corpus holds a scripted exploration and the totals it must produce.
// Token expectations use the word model: the session under test runs the
// word encoder, and AddNodes counts the batch's page contents concatenated
// without a separator, so the corpus models that with strings.Fields over
// the "" join.
type Corpus struct {
	Script         *session.Script
	Topics         []topic
	ExpectedTokens int
	ExpectedDocs   int
	ExpectedNodes  int
	TotalRounds    int
}

func buildTopics() []topic {
	types := []artifact.DocType{artifact.DocTypeWiki, artifact.DocTypeWebPage, artifact.DocTypeEssay}
	raw := []struct {
		title    string
		phrase   string
		content  string
		followUp string
	}{
		{"Rivers", "rivers carve valleys", "A river is a natural watercourse flowing toward an ocean or lake. Over geological time rivers carve valleys and deposit sediment across floodplains.", "how do rivers change course over time"},
		{"Glaciers", "glaciers advance and retreat", "Glaciers are persistent bodies of dense ice moving under their own weight. As climates shift, glaciers advance and retreat, leaving moraines behind.", "what landforms do retreating glaciers leave"},
		{"Monsoons", "seasonal monsoon winds", "A monsoon is a seasonal reversal of wind accompanied by changes in precipitation. Seasonal monsoon winds drive the wet and dry seasons across South Asia.", "why do monsoon winds reverse each year"},
		{"Coral Reefs", "coral reefs host biodiversity", "Coral reefs are underwater ecosystems built from calcium carbonate secreted by corals. Coral reefs host biodiversity rivaling that of tropical rainforests.", "what causes coral bleaching events"},
		{"Photosynthesis", "photosynthesis converts light", "Photosynthesis converts light energy into chemical energy stored in glucose. The process consumes carbon dioxide and water while releasing oxygen.", "how efficient is photosynthesis per leaf area"},
		{"Plate Tectonics", "plates drift atop the mantle", "The lithosphere is broken into plates that drift atop the mantle. Earthquakes and mountain ranges concentrate along their boundaries.", "which plate boundaries produce the strongest earthquakes"},
		{"Aurora", "charged particles excite", "Auroras appear when charged particles excite gases high in the atmosphere. Oxygen glows green and red while nitrogen adds blue and purple fringes.", "why are auroras strongest near the poles"},
		{"Tides", "gravitational pull of the moon", "Tides are the periodic rise and fall of sea level. The gravitational pull of the moon and the sun stretches the ocean into bulges.", "why do some coasts see two unequal tides daily"},
		{"Volcanoes", "magma reaches the surface", "A volcano forms where magma reaches the surface through a rupture in the crust. Eruption styles range from gentle effusion to explosive blasts.", "what determines whether an eruption is explosive"},
		{"Deserts", "deserts receive scant rainfall", "Deserts receive scant rainfall yet support specialized plants and animals. Temperature swings between day and night can exceed thirty degrees.", "how do desert animals conserve water"},
		{"Rainforests", "rainforests recycle moisture", "Tropical rainforests recycle moisture through transpiration, seeding their own clouds. A single hectare may hold hundreds of tree species.", "how much rainfall do rainforests generate themselves"},
		{"Wetlands", "wetlands filter runoff", "Wetlands are land areas saturated with water long enough to support aquatic vegetation. Wetlands filter runoff and buffer floods before water reaches rivers.", "why are wetlands drained and what is lost"},
		{"Ocean Currents", "currents redistribute heat", "Surface and deep ocean currents redistribute heat from the equator toward the poles. The thermohaline circulation links every major basin.", "what would happen if the gulf stream slowed"},
		{"Soil Formation", "weathering breaks rock", "Soil forms as weathering breaks rock into mineral grains that mix with organic matter. A centimeter of topsoil can take centuries to accumulate.", "which factors speed up soil formation"},
		{"Erosion", "wind and water strip", "Erosion is the removal of surface material by wind and water. Wind and water strip exposed soil fastest where vegetation is gone.", "how does vegetation slow erosion"},
		{"Groundwater", "aquifers store water", "Groundwater fills the pore spaces of soil and rock beneath the surface. Aquifers store water that wells and springs later return to use.", "how long does water stay underground"},
		{"River Deltas", "deltas build new land", "A delta forms where a river meets standing water and drops its sediment. Deltas build new land but subside when sediment supply is cut.", "why are many deltas sinking today"},
		{"Estuaries", "fresh and salt water mix", "An estuary is a partly enclosed coastal body where fresh and salt water mix. The brackish gradient makes estuaries nurseries for marine life.", "what species depend on estuary nurseries"},
		{"Permafrost", "ground stays frozen", "Permafrost is ground that stays frozen for at least two consecutive years. Thawing permafrost releases methane and destabilizes the land above.", "how much carbon is locked in permafrost"},
		{"Cloud Formation", "moist air cools and condenses", "Clouds form when moist air cools and condenses onto microscopic particles. Cloud type depends on the altitude and stability of the rising air.", "why do some clouds produce rain and others not"},
		{"Lightning", "charge separates inside storms", "Lightning is an electrostatic discharge between charged regions. Charge separates inside storms as ice particles collide in strong updrafts.", "how hot is a lightning channel"},
		{"Jet Stream", "fast ribbons of wind", "Jet streams are fast ribbons of wind near the tropopause. Their meanders steer storm tracks and lock weather patterns in place.", "how does the jet stream shape heat waves"},
		{"El Nino", "pacific trade winds weaken", "El Nino is a warming of the central Pacific that recurs every few years. When pacific trade winds weaken, warm water sloshes eastward and shifts rainfall worldwide.", "how does el nino alter global rainfall"},
		{"Carbon Cycle", "carbon moves between reservoirs", "The carbon cycle tracks how carbon moves between reservoirs in the air, ocean, rock, and life. Human emissions have shifted the balance among them.", "which carbon reservoir is largest"},
	}

	topics := make([]topic, 0, len(raw))
	for i, r := range raw {
		topics = append(topics, topic{
			title:    r.title,
			docType:  types[i%len(types)],
			source:   fmt.Sprintf("https://example.org/explore/%03d", i+1),
			phrase:   r.phrase,
			content:  r.content,
			followUp: r.followUp,
		})
	}
	return topics
}

func containsPhrase(content, phrase string) bool {
	return strings.Contains(content, phrase)
}

func documentItem(t topic, query string) session.ExpandItem {
	return session.ExpandItem{
		Type: session.ItemDocument,
		Metadata: artifact.Metadata{
			Title:  t.title,
			Type:   t.docType,
			Source: t.source,
			Query:  query,
		},
		PageContent: t.content,
	}
}

func queryItem(text string) session.ExpandItem {
	return session.ExpandItem{Type: session.ItemQuery, Text: text}
}

// BuildCorpus returns a deterministic exploration script. The first round
// seeds the root with three documents; every later round pops a leaf and
// expands it, cycling through mixed, document-only, and query-only batches
// so both queue ends and both push directions get exercised.
func BuildCorpus() *Corpus {
	topics := buildTopics()

	var steps []session.Step
	steps = append(steps, session.Step{
		Expand: session.TargetRoot,
		Items: []session.ExpandItem{
			documentItem(topics[0], ""),
			documentItem(topics[1], ""),
			documentItem(topics[2], ""),
		},
	})

	for i := 3; i < len(topics); i++ {
		t := topics[i]
		switch i % 3 {
		case 0:
			steps = append(steps, session.Step{
				Expand: "front",
				Items: []session.ExpandItem{
					queryItem(t.followUp),
					documentItem(t, t.followUp),
				},
			})
		case 1:
			steps = append(steps, session.Step{
				Expand: "back",
				Items:  []session.ExpandItem{documentItem(t, "")},
			})
		default:
			steps = append(steps, session.Step{
				Expand: "front",
				Items: []session.ExpandItem{
					queryItem(t.followUp),
					queryItem("list sources about " + strings.ToLower(t.title)),
				},
			})
		}
	}

	script := &session.Script{Steps: steps}
	c := &Corpus{
		Script:      script,
		Topics:      topics,
		TotalRounds: len(steps),
	}

	for _, step := range steps {
		var contents []string
		for _, item := range step.Items {
			if item.Type == session.ItemDocument {
				contents = append(contents, item.PageContent)
				c.ExpectedDocs++
			}
			c.ExpectedNodes++
		}
		if len(contents) > 0 {
			c.ExpectedTokens += len(strings.Fields(strings.Join(contents, "")))
		}
	}
	c.ExpectedNodes++ // plus the root
	return c
}
