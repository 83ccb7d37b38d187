// Package catalog holds the static NCERT biology reference data used to
// ground prompts and to populate the reference panels in the UI.
// The tables are initialized once and never mutated.
package catalog

import (
	"fmt"
	"strings"
)

// Entry is one term/description pair inside a category. Entries are kept
// in slices instead of maps so serialization order is deterministic.
type Entry struct {
	Term        string `json:"term"`
	Description string `json:"description"`
}

var ReceptorTypes = []Entry{
	{"nociceptors", "Pain receptors in skin/tissue detecting harmful stimuli"},
	{"thermoreceptors", "Detect temperature changes (hot/cold)"},
	{"photoreceptors", "Rods and cones in retina detecting light"},
	{"mechanoreceptors", "Detect pressure, touch, vibration"},
	{"chemoreceptors", "Detect chemical stimuli (taste, smell)"},
	{"proprioceptors", "Detect body position and movement"},
}

var NeuronTypes = []Entry{
	{"sensory_neuron", "Afferent neuron carrying signals from receptor to CNS"},
	{"motor_neuron", "Efferent neuron carrying signals from CNS to effector"},
	{"interneuron", "Relay neuron within CNS connecting sensory and motor neurons"},
}

// PathwayComponents is the canonical 5-step signal pathway, in order.
var PathwayComponents = []string{
	"Receptor/Sense Organ",
	"Sensory (Afferent) Neuron",
	"Spinal Cord / Brain Stem (CNS Relay)",
	"Interneuron / Relay Neuron",
	"Brain Region (Processing Center)",
}

var BrainRegions = []Entry{
	{"somatosensory_cortex", "Processes touch, pain, temperature (parietal lobe)"},
	{"motor_cortex", "Initiates voluntary movement (frontal lobe)"},
	{"visual_cortex", "Processes visual information (occipital lobe)"},
	{"auditory_cortex", "Processes sound (temporal lobe)"},
	{"cerebellum", "Coordinates balance and fine motor control"},
	{"hypothalamus", "Regulates temperature, hunger, thirst"},
	{"medulla_oblongata", "Controls involuntary functions (breathing, heart rate)"},
}

var SignalTransmission = []Entry{
	{"synapse", "Junction between two neurons; signal crosses via neurotransmitters"},
	{"neurotransmitters", "Chemical messengers (e.g., acetylcholine, dopamine)"},
	{"action_potential", "Electrical impulse traveling along the axon"},
	{"reflex_arc", "Rapid involuntary response pathway bypassing the brain"},
}

var Chapters = []string{
	"Class 10 Ch.7: Control and Coordination",
	"Class 11 Ch.21: Neural Control and Coordination",
	"Class 12 Ch.4: Human Neural System (reference)",
}

// Context serializes the reference data into the block embedded in the
// system instruction. Output is deterministic across calls.
func Context() string {
	var b strings.Builder
	b.WriteString("=== NCERT BIOLOGY REFERENCE DATA ===\n")

	b.WriteString("\n## Receptor Types:\n")
	writeEntries(&b, ReceptorTypes)

	b.WriteString("\n## Neuron Types:\n")
	writeEntries(&b, NeuronTypes)

	b.WriteString("\n## Standard Signal Pathway Components (5-step model):\n")
	for i, comp := range PathwayComponents {
		fmt.Fprintf(&b, "  Step %d: %s\n", i+1, comp)
	}

	b.WriteString("\n## Key Brain Regions:\n")
	writeEntries(&b, BrainRegions)

	b.WriteString("\n## Signal Transmission Concepts:\n")
	writeEntries(&b, SignalTransmission)

	b.WriteString("\n## NCERT Chapter References:\n")
	for _, ch := range Chapters {
		fmt.Fprintf(&b, "  - %s\n", ch)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeEntries(b *strings.Builder, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s: %s\n", e.Term, e.Description)
	}
}

// Reference is the JSON shape served to the presentation layer's
// sidebar panels.
type Reference struct {
	ReceptorTypes      []Entry  `json:"receptor_types"`
	NeuronTypes        []Entry  `json:"neuron_types"`
	PathwayComponents  []string `json:"signal_pathway_components"`
	BrainRegions       []Entry  `json:"key_brain_regions"`
	SignalTransmission []Entry  `json:"signal_transmission"`
	Chapters           []string `json:"ncert_chapters"`
}

func Panels() Reference {
	return Reference{
		ReceptorTypes:      ReceptorTypes,
		NeuronTypes:        NeuronTypes,
		PathwayComponents:  PathwayComponents,
		BrainRegions:       BrainRegions,
		SignalTransmission: SignalTransmission,
		Chapters:           Chapters,
	}
}
