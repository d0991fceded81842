package scene

// sceneSchema validates the scene interchange format before decoding.
// Geometry-level constraints (loop ranges, index validity) are checked by
// the loader after decoding.
const sceneSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["objects"],
  "properties": {
    "objects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "type": { "type": "string", "minLength": 1 },
          "selected": { "type": "boolean" },
          "transform": {
            "type": "array",
            "items": { "type": "number" },
            "minItems": 16,
            "maxItems": 16
          },
          "mesh": {
            "type": "object",
            "required": ["vertices", "loops", "polygons"],
            "properties": {
              "vertices": { "$ref": "#/$defs/vec3array" },
              "normals": { "$ref": "#/$defs/vec3array" },
              "loops": {
                "type": "array",
                "items": { "type": "integer", "minimum": 0 }
              },
              "polygons": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["loop_start", "loop_total"],
                  "properties": {
                    "loop_start": { "type": "integer", "minimum": 0 },
                    "loop_total": { "type": "integer", "minimum": 1 },
                    "normal": { "$ref": "#/$defs/vec3" },
                    "smooth": { "type": "boolean" },
                    "material_index": { "type": "integer", "minimum": 0 }
                  }
                }
              },
              "uv_layers": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["data"],
                  "properties": {
                    "name": { "type": "string" },
                    "data": {
                      "type": "array",
                      "items": {
                        "type": "array",
                        "items": { "type": "number" },
                        "minItems": 2,
                        "maxItems": 2
                      }
                    }
                  }
                }
              },
              "materials": {
                "type": "array",
                "items": { "type": ["string", "null"] }
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "vec3": {
      "type": "array",
      "items": { "type": "number" },
      "minItems": 3,
      "maxItems": 3
    },
    "vec3array": {
      "type": "array",
      "items": { "$ref": "#/$defs/vec3" }
    }
  }
}`
