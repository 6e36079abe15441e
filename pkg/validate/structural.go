package validate

import (
	"fmt"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/schema"
)

func enumMembers[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var (
	projectInfoSchema = schema.Schema{
		"name":      schema.String(),
		"client":    schema.Optional(schema.String()),
		"address":   schema.Optional(schema.String()),
		"architect": schema.Optional(schema.String()),
		"date":      schema.Optional(schema.String()),
	}

	floorSchema = schema.Schema{
		"level":  schema.Int(),
		"height": schema.Optional(schema.Float()),
		"rooms":  schema.Slice(schema.Object(nil)),
	}

	roomSchema = schema.Schema{
		"name":      schema.String(),
		"type":      schema.Optional(schema.Enum("room type", enumMembers(domain.RoomTypes)...)),
		"geometry":  schema.Object(nil),
		"doors":     schema.Optional(schema.Slice(schema.Object(nil))),
		"windows":   schema.Optional(schema.Slice(schema.Object(nil))),
		"furniture": schema.Optional(schema.Slice(schema.Object(nil))),
	}

	geometrySchema = schema.Schema{
		"type":        schema.Optional(schema.String()),
		"coordinates": schema.Slice(schema.Pair()),
	}

	doorSchema = schema.Schema{
		"wall_index":      schema.Int(),
		"position":        schema.Float(),
		"width":           schema.Optional(schema.Float()),
		"height":          schema.Optional(schema.Float()),
		"type":            schema.Optional(schema.Enum("door type", enumMembers(domain.DoorKinds)...)),
		"swing_direction": schema.Optional(schema.String()),
	}

	windowSchema = schema.Schema{
		"wall_index":  schema.Int(),
		"position":    schema.Float(),
		"width":       schema.Optional(schema.Float()),
		"height":      schema.Optional(schema.Float()),
		"sill_height": schema.Optional(schema.Float()),
		"type":        schema.Optional(schema.Enum("window type", enumMembers(domain.WindowKinds)...)),
	}

	furnitureSchema = schema.Schema{
		"type":       schema.Enum("furniture type", enumMembers(domain.FurnitureKinds)...),
		"position":   schema.Object(schema.Schema{"x": schema.Float(), "y": schema.Float(), "rotation": schema.Optional(schema.Float())}),
		"dimensions": schema.Optional(schema.Object(nil)),
		"label":      schema.Optional(schema.String()),
	}
)

// structural is stage 1: the raw document against the declared schema.
// It walks the document shape and accumulates a diagnostic per failing
// field, tagged with a JSON-pointer path.
func (p *Pipeline) structural(doc map[string]any) domain.Diagnostics {
	var diags domain.Diagnostics

	diags = appendFieldDiags(diags, "", schema.Validate(schema.Schema{
		"project_info": schema.Object(nil),
		"building":     schema.Object(nil),
	}, doc))
	if diags.HasErrors() {
		return diags
	}

	info := doc["project_info"].(map[string]any)
	diags = appendFieldDiags(diags, "/project_info", schema.Validate(projectInfoSchema, info))

	building := doc["building"].(map[string]any)
	floorsVal, ok := building["floors"].([]any)
	if !ok {
		return append(diags, structuralDiag("/building/floors", "required array of floor objects"))
	}

	for i, fv := range floorsVal {
		floorPath := fmt.Sprintf("/building/floors/%d", i)
		floor, ok := fv.(map[string]any)
		if !ok {
			diags = append(diags, structuralDiag(floorPath, fmt.Sprintf("expected object, got %T", fv)))
			continue
		}
		diags = appendFieldDiags(diags, floorPath, schema.Validate(floorSchema, floor))

		rooms, ok := floor["rooms"].([]any)
		if !ok {
			continue
		}
		for j, rv := range rooms {
			roomPath := fmt.Sprintf("%s/rooms/%d", floorPath, j)
			room, ok := rv.(map[string]any)
			if !ok {
				diags = append(diags, structuralDiag(roomPath, fmt.Sprintf("expected object, got %T", rv)))
				continue
			}
			diags = append(diags, p.structuralRoom(roomPath, room)...)
		}
	}

	return diags
}

func (p *Pipeline) structuralRoom(path string, room map[string]any) domain.Diagnostics {
	var diags domain.Diagnostics
	diags = appendFieldDiags(diags, path, schema.Validate(roomSchema, room))

	if geom, ok := room["geometry"].(map[string]any); ok {
		diags = appendFieldDiags(diags, path+"/geometry", schema.Validate(geometrySchema, geom))
	}

	diags = append(diags, structuralChildren(path+"/doors", room["doors"], doorSchema)...)
	diags = append(diags, structuralChildren(path+"/windows", room["windows"], windowSchema)...)
	diags = append(diags, structuralChildren(path+"/furniture", room["furniture"], furnitureSchema)...)
	return diags
}

// structuralChildren validates each element of an optional object array
// against a schema, one diagnostic set per element.
func structuralChildren(path string, value any, s schema.Schema) domain.Diagnostics {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var diags domain.Diagnostics
	for i, iv := range items {
		itemPath := fmt.Sprintf("%s/%d", path, i)
		item, ok := iv.(map[string]any)
		if !ok {
			diags = append(diags, structuralDiag(itemPath, fmt.Sprintf("expected object, got %T", iv)))
			continue
		}
		diags = appendFieldDiags(diags, itemPath, schema.Validate(s, item))
	}
	return diags
}

func structuralDiag(path, message string) domain.Diagnostic {
	return domain.Diagnostic{
		Stage:    domain.StageStructural,
		Path:     path,
		Message:  message,
		Severity: domain.SeverityError,
	}
}

// appendFieldDiags fans a schema aggregate error out into one diagnostic
// per failing field.
func appendFieldDiags(diags domain.Diagnostics, prefix string, err error) domain.Diagnostics {
	for _, fe := range schema.FieldErrors(err) {
		diags = append(diags, structuralDiag(prefix+"/"+fe.Key, fe.Reason))
	}
	return diags
}
