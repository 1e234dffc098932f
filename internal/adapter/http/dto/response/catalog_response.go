package response

import "service_station/internal/domain/entities"

type ServiceResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Active bool   `json:"active"`
}

func FromServices(in []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceResponse{ID: s.ID, Name: s.Name, Price: money(s.Price), Active: s.Active})
	}
	return out
}

type DefectTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DefectNodeResponse struct {
	ID    int64                `json:"id"`
	Name  string               `json:"name"`
	Types []DefectTypeResponse `json:"types"`
}

func FromDefectNodes(in []entities.DefectNode) []DefectNodeResponse {
	out := make([]DefectNodeResponse, 0, len(in))
	for _, n := range in {
		types := make([]DefectTypeResponse, 0, len(n.Types))
		for _, t := range n.Types {
			types = append(types, DefectTypeResponse{ID: t.ID, Name: t.Name})
		}
		out = append(out, DefectNodeResponse{ID: n.ID, Name: n.Name, Types: types})
	}
	return out
}

type WorkerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func FromWorker(w entities.Worker) WorkerResponse {
	return WorkerResponse{ID: w.ID, Name: w.Name, Role: string(w.Role), Status: string(w.Status)}
}

func FromWorkers(in []entities.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(in))
	for _, w := range in {
		out = append(out, FromWorker(w))
	}
	return out
}
