package models

import "encoding/json"

// Clone returns a deep copy of the document via its JSON form.
// Guarantees that no nested slice or pointer is shared with the original.
func (d ContentDocument) Clone() ContentDocument {
	raw, err := json.Marshal(d)
	if err != nil {
		return d
	}
	var out ContentDocument
	if err := json.Unmarshal(raw, &out); err != nil {
		return d
	}
	return out
}

// MergeOntoDefaults deep-merges incoming JSON onto the built-in default
// document, so fields absent from the payload are backfilled instead of
// rendering as empty. Used for full imports and for loading stored blobs
// written by older versions without some fields.
func MergeOntoDefaults(raw []byte) (ContentDocument, error) {
	return mergeOnto(DefaultContent(), raw)
}

// MergeDocument additively merges incoming JSON into an existing document:
// keys present in the payload overwrite per-key (arrays wholesale), keys
// absent from the payload keep their current values.
func MergeDocument(doc ContentDocument, raw []byte) (ContentDocument, error) {
	return mergeOnto(doc, raw)
}

// MergePage additively merges incoming JSON into one SitePage. The page's
// id and slug are preserved so an import cannot detach the page from its URL.
func MergePage(page SitePage, raw []byte) (SitePage, error) {
	base, err := toMap(page)
	if err != nil {
		return page, err
	}
	var incoming map[string]any
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return page, err
	}
	merged := deepMerge(base, incoming)
	merged["id"] = page.ID
	merged["slug"] = page.Slug

	out := page
	if err := fromMap(merged, &out); err != nil {
		return page, err
	}
	return out, nil
}

func mergeOnto(doc ContentDocument, raw []byte) (ContentDocument, error) {
	base, err := toMap(doc)
	if err != nil {
		return doc, err
	}
	var incoming map[string]any
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return doc, err
	}
	merged := deepMerge(base, incoming)

	var out ContentDocument
	if err := fromMap(merged, &out); err != nil {
		return doc, err
	}
	return out, nil
}

// deepMerge merges src into dst recursively. Objects merge per key,
// everything else (scalars, arrays, null-replaced-by-value) overwrites.
func deepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = deepMerge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]any, target any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
