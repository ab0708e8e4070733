package extraction

// DefaultPrompt is the extraction prompt template. Arguments, in order:
// label vocabulary, relationship vocabulary, document text.
const DefaultPrompt = `You are a network graph maker. Extract the entities mentioned in the text below and the relationships between them.

ENTITY LABELS (use exactly these values for the "label" field):
%s
RELATIONSHIPS to look for:
%s
Return a JSON object with exactly one key:
  "triples" : array of {"node_1": {"name": string, "label": string}, "node_2": {"name": string, "label": string}, "relationship": string}

Rules:
- Every node label must come from the ENTITY LABELS list.
- The relationship is a short free-text description of how node_1 relates to node_2.
- Only include triples clearly supported by the text.
- If there are none, return an empty array.
- Do NOT include any text outside the JSON object.

TEXT:
%s`
